package checker

import (
	"bufio"
	"context"
	"io"
	"sync"
)

type readResult struct {
	text string // raw line including its line break, if any
	err  error
}

// lineReader reads one line per request on a background goroutine so
// that a blocked read never prevents the driver from seeing context
// cancellation.  Nothing is read until a line is asked for.
type lineReader struct {
	br   *bufio.Reader
	reqs chan struct{}
	resp chan readResult
	quit chan struct{}
	once sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		br:   bufio.NewReader(r),
		reqs: make(chan struct{}),
		resp: make(chan readResult),
		quit: make(chan struct{}),
	}
	go lr.loop()
	return lr
}

func (lr *lineReader) loop() {
	for {
		select {
		case <-lr.quit:
			return
		case <-lr.reqs:
		}

		// ReadString has no length limit, unlike bufio.Scanner.
		text, err := lr.br.ReadString('\n')

		select {
		case lr.resp <- readResult{text: text, err: err}:
		case <-lr.quit:
			return
		}
	}
}

// next returns the next raw line.  A final line without a line break
// is returned together with io.EOF.
func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case lr.reqs <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case res := <-lr.resp:
		return res.text, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// close stops the reader goroutine.  A read already blocked in the
// underlying reader finishes when that reader returns.
func (lr *lineReader) close() {
	lr.once.Do(func() { close(lr.quit) })
}
