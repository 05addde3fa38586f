package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(verbosity int) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(verbosity)
	l.SetOutput(&buf)
	l.SetTimestamps(false)
	return l, &buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newTestLogger(3)

	l.Error("e")
	l.Warn("w")
	l.Info("i")
	l.Verbose("v")
	l.Debug("d")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5, buf.String())

	wantPrefixes := []string{"[ERR]", "[WRN]", "[INF]", "[VRB]", "[DBG]"}
	for i, prefix := range wantPrefixes {
		assert.True(t, strings.HasPrefix(lines[i], prefix), "line %d %q missing prefix %q", i, lines[i], prefix)
	}
}

func TestLogger_QuietMode(t *testing.T) {
	l, buf := newTestLogger(0)

	l.Info("should not appear")
	l.Verbose("should not appear")
	l.Debug("should not appear")
	l.Error("always appears")

	assert.Equal(t, "[ERR] always appears\n", buf.String())
}

func TestLogger_NegativeVerbosity(t *testing.T) {
	l := NewLogger(-4)
	assert.Equal(t, LogQuiet, l.Level())
}

func TestLogger_Enabled(t *testing.T) {
	l := NewLogger(2)
	assert.True(t, l.Enabled(LogNormal))
	assert.True(t, l.Enabled(LogVerbose))
	assert.False(t, l.Enabled(LogDebug))
}

func TestLogger_Tag(t *testing.T) {
	l, buf := newTestLogger(1)
	l.SetTag("3f2a9c1e")

	l.Info("line %d", 4)

	assert.Equal(t, "[INF] 3f2a9c1e: line 4\n", buf.String())
}

func TestLogger_Timestamps(t *testing.T) {
	l, buf := newTestLogger(1)
	l.SetTimestamps(true)

	l.Info("test")

	// Timestamp format is "HH:MM:SS.mmm".
	out := buf.String()
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}\.\d{3} \[INF\] test\n$`, out)
}

func TestLogger_DebugEnablesTimestamps(t *testing.T) {
	assert.True(t, NewLogger(3).timestamps)
	assert.False(t, NewLogger(2).timestamps)
}
