// Package checker drives a brackets run: it reads lines until the
// terminator, checks each one and writes a yes/no verdict per line.
package checker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"brackets/config"
	"brackets/internal/balance"
	bkerrors "brackets/internal/errors"
	"brackets/internal/session"
	"brackets/util"
)

// Options tune a single run.
type Options struct {
	// Terminator is the line that ends processing.  It is compared
	// after trailing whitespace has been stripped and is never checked.
	Terminator string

	// Prompt, if non-empty, is written to the session's prompt writer
	// before every read.
	Prompt string

	// FlushEachLine flushes the output after every verdict instead of
	// only when the run ends.
	FlushEachLine bool
}

// Checker orchestrates a single run.
type Checker struct {
	sess *session.Session
	opts Options
}

// New returns a ready-to-run Checker.  An empty terminator falls back
// to the default.
func New(sess *session.Session, opts Options) *Checker {
	if opts.Terminator == "" {
		opts.Terminator = config.DefaultTerminator
	}
	return &Checker{sess: sess, opts: opts}
}

// Run processes lines until the terminator, end of input, a stream
// failure or cancellation of ctx.  Reaching the terminator or end of
// input returns nil.
func (c *Checker) Run(ctx context.Context) (err error) {
	s := c.sess
	out := bufio.NewWriter(s.Output)
	defer func() {
		if ferr := out.Flush(); ferr != nil && err == nil {
			s.Metrics.RecordError(ferr.Error())
			err = bkerrors.WrapWrite(s.OutputName, ferr)
		}
	}()

	lr := newLineReader(s.Input)
	defer lr.close()

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.prompt()

		raw, rerr := lr.next(ctx)
		atEOF := errors.Is(rerr, io.EOF)
		switch {
		case rerr == nil, atEOF:
		case errors.Is(rerr, context.Canceled), errors.Is(rerr, context.DeadlineExceeded):
			return rerr
		default:
			s.Metrics.RecordError(rerr.Error())
			return bkerrors.WrapRead(s.InputName, n, rerr)
		}

		if atEOF && raw == "" {
			s.Logger.Verbose("end of input after %d line(s)", n-1)
			return nil
		}
		s.Metrics.BytesRead(int64(len(raw)))

		line := strings.TrimRightFunc(raw, unicode.IsSpace)
		if line == c.opts.Terminator {
			s.Metrics.TerminatorSeen()
			s.Logger.Verbose("terminator on line %d", n)
			return nil
		}

		if err := c.emit(out, n, line); err != nil {
			return err
		}
		if atEOF {
			s.Logger.Verbose("end of input after %d line(s)", n)
			return nil
		}
	}
}

// emit checks one line and writes its verdict.
func (c *Checker) emit(out *bufio.Writer, n int, line string) error {
	s := c.sess
	res := balance.Scan(line)
	s.Metrics.LineChecked(res.Verdict == balance.Balanced)

	if s.Logger.Enabled(util.LogDebug) {
		s.Logger.Debug("line %d: %s%s", n, res.Verdict, describe(res))
	}

	if _, err := out.WriteString(res.Verdict.Token() + "\n"); err != nil {
		s.Metrics.RecordError(err.Error())
		return bkerrors.WrapWrite(s.OutputName, err)
	}
	if c.opts.FlushEachLine {
		if err := out.Flush(); err != nil {
			s.Metrics.RecordError(err.Error())
			return bkerrors.WrapWrite(s.OutputName, err)
		}
	}
	return nil
}

func (c *Checker) prompt() {
	if c.opts.Prompt == "" || c.sess.Prompts == nil {
		return
	}
	fmt.Fprint(c.sess.Prompts, c.opts.Prompt) //nolint:errcheck
}

// describe renders the diagnostic part of a debug line.
func describe(res balance.Result) string {
	switch {
	case res.Offset >= 0:
		return fmt.Sprintf(" (unmatched closer at byte %d)", res.Offset)
	case res.Unclosed > 0:
		return fmt.Sprintf(" (%d unclosed opener(s))", res.Unclosed)
	default:
		return ""
	}
}
