package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  ReadError
		want string
	}{
		{
			name: "named input",
			err:  ReadError{Line: 3, Name: "stdin", Err: io.ErrUnexpectedEOF},
			want: "read stdin line 3: unexpected EOF",
		},
		{
			name: "anonymous input",
			err:  ReadError{Line: 1, Err: fmt.Errorf("device gone")},
			want: "read line 1: device gone",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestReadError_Unwrap(t *testing.T) {
	err := WrapRead("in.txt", 7, io.ErrClosedPipe)
	assert.True(t, Is(err, io.ErrClosedPipe))
	assert.Equal(t, 7, err.Line)
}

func TestWriteError_Format(t *testing.T) {
	err := WrapWrite("stdout", io.ErrShortWrite)
	assert.Equal(t, "write stdout: short write", err.Error())
	assert.True(t, Is(err, io.ErrShortWrite))

	anon := &WriteError{Err: io.ErrShortWrite}
	assert.Equal(t, "write: short write", anon.Error())
}

func TestConfigError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  ConfigError
		want string
	}{
		{
			name: "with value and hint",
			err: ConfigError{
				Field:   "prompt",
				Value:   "sometimes",
				Message: "unknown prompt mode",
				Hint:    "use auto, always or never",
			},
			want: "config: --prompt=\"sometimes\": unknown prompt mode\n  hint: use auto, always or never",
		},
		{
			name: "missing value no hint",
			err: ConfigError{
				Field:   "terminator",
				Message: "must not be empty",
			},
			want: "config: --terminator: must not be empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	err := &ConfigError{Field: "terminator", Message: "empty", Err: ErrEmptyTerminator}
	assert.True(t, Is(err, ErrEmptyTerminator))
}

func TestIsStreamError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"read", WrapRead("stdin", 1, io.EOF), true},
		{"write", WrapWrite("stdout", io.EOF), true},
		{"wrapped read", fmt.Errorf("check: %w", WrapRead("stdin", 2, io.EOF)), true},
		{"config", &ConfigError{Field: "x", Message: "y"}, false},
		{"plain", fmt.Errorf("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStreamError(tt.err))
		})
	}
}

func TestSentinels(t *testing.T) {
	require.NotEqual(t, ErrEmptyTerminator, ErrUnknownPrompt)
	assert.False(t, Is(ErrEmptyTerminator, ErrUnknownPrompt))
}
