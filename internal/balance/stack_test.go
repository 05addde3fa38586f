package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	var s stack[byte]

	_, ok := s.pop()
	assert.False(t, ok, "pop on empty stack")
	_, ok = s.peek()
	assert.False(t, ok, "peek on empty stack")
	assert.Equal(t, 0, s.len())

	s.push('(')
	s.push('[')
	assert.Equal(t, 2, s.len())

	top, ok := s.peek()
	assert.True(t, ok)
	assert.Equal(t, byte('['), top)
	assert.Equal(t, 2, s.len(), "peek does not remove")

	v, ok := s.pop()
	assert.True(t, ok)
	assert.Equal(t, byte('['), v)

	v, ok = s.pop()
	assert.True(t, ok)
	assert.Equal(t, byte('('), v)

	_, ok = s.pop()
	assert.False(t, ok)
}
