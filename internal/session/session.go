// Package session represents a single brackets run, binding the input
// and output streams with the logger and metrics that observe it.
//
// Sessions decouple the driver from concrete I/O sources: it doesn't
// need to know whether it's reading from os.Stdin or a test buffer, it
// just uses the session's Reader/Writer.
package session

import (
	"io"

	"github.com/google/uuid"

	"brackets/internal/metrics"
	"brackets/util"
)

// Session encapsulates the runtime context for one run.
type Session struct {
	ID      string
	Input   io.Reader
	Output  io.Writer
	Prompts io.Writer // where interactive prompts go; nil disables them

	InputName  string // for error messages, e.g. "stdin"
	OutputName string

	Logger  *util.Logger
	Metrics *metrics.Collector
}

// New creates a Session bound to the given I/O pair with a fresh id.
// A nil logger is replaced with a quiet one.
func New(in io.Reader, out io.Writer, logger *util.Logger, m *metrics.Collector) *Session {
	if logger == nil {
		logger = util.NewLogger(0)
	}
	id := uuid.NewString()
	m.SetSession(id)
	return &Session{
		ID:         id,
		Input:      in,
		Output:     out,
		InputName:  "stdin",
		OutputName: "stdout",
		Logger:     logger,
		Metrics:    m,
	}
}

// ShortID returns the first eight characters of the id, for log tags.
func (s *Session) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}
