// Package metrics counts what a brackets run has seen: lines checked,
// how many were balanced, and how much input was consumed.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks per-run statistics.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	linesChecked atomic.Int64
	balanced     atomic.Int64
	unbalanced   atomic.Int64
	bytesIn      atomic.Int64
	errorsTotal  atomic.Int64

	mu           sync.RWMutex
	sessionID    string
	startTime    time.Time
	terminated   bool
	lastError    time.Time
	lastErrorMsg string
}

// New creates a collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// SetSession tags the snapshot with the run's session id.
func (c *Collector) SetSession(id string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.sessionID = id
	c.mu.Unlock()
}

// ── Line metrics ─────────────────────────────────────────────────────

// LineChecked records one verdict.
func (c *Collector) LineChecked(balanced bool) {
	if c == nil {
		return
	}
	c.linesChecked.Add(1)
	if balanced {
		c.balanced.Add(1)
	} else {
		c.unbalanced.Add(1)
	}
}

// LinesChecked returns the number of verdicts recorded.
func (c *Collector) LinesChecked() int64 {
	if c == nil {
		return 0
	}
	return c.linesChecked.Load()
}

// BalancedLines returns how many lines were balanced.
func (c *Collector) BalancedLines() int64 {
	if c == nil {
		return 0
	}
	return c.balanced.Load()
}

// UnbalancedLines returns how many lines were unbalanced.
func (c *Collector) UnbalancedLines() int64 {
	if c == nil {
		return 0
	}
	return c.unbalanced.Load()
}

// TerminatorSeen records that input ended on the terminator line
// rather than end of stream.
func (c *Collector) TerminatorSeen() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.terminated = true
	c.mu.Unlock()
}

// ── I/O metrics ──────────────────────────────────────────────────────

// BytesRead records n bytes consumed from the input, line breaks
// included.
func (c *Collector) BytesRead(n int64) {
	if c == nil {
		return
	}
	c.bytesIn.Add(n)
}

// TotalBytesIn returns total bytes read.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Session          string `json:"session,omitempty"`
	Elapsed          string `json:"elapsed"`
	LinesChecked     int64  `json:"lines_checked"`
	Balanced         int64  `json:"balanced"`
	Unbalanced       int64  `json:"unbalanced"`
	BytesIn          int64  `json:"bytes_in"`
	Terminated       bool   `json:"terminated"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Session:      c.sessionID,
		Elapsed:      time.Since(c.startTime).Round(time.Millisecond).String(),
		LinesChecked: c.linesChecked.Load(),
		Balanced:     c.balanced.Load(),
		Unbalanced:   c.unbalanced.Load(),
		BytesIn:      c.bytesIn.Load(),
		Terminated:   c.terminated,
		ErrorsTotal:  c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
