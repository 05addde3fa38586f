package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brackets/internal/metrics"
)

func TestNew(t *testing.T) {
	in := strings.NewReader("()\n")
	var out bytes.Buffer
	m := metrics.New()

	s := New(in, &out, nil, m)

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err, "id should be a UUID")
	assert.NotNil(t, s.Logger, "nil logger is replaced")
	assert.Equal(t, "stdin", s.InputName)
	assert.Equal(t, "stdout", s.OutputName)
	assert.Nil(t, s.Prompts)
	assert.Equal(t, s.ID, m.Snapshot().Session)
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New(strings.NewReader(""), &bytes.Buffer{}, nil, nil)
	b := New(strings.NewReader(""), &bytes.Buffer{}, nil, nil)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestShortID(t *testing.T) {
	s := &Session{ID: "0123456789abcdef"}
	assert.Equal(t, "01234567", s.ShortID())

	s.ID = "abc"
	assert.Equal(t, "abc", s.ShortID())
}
