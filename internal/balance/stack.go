package balance

// stack is a slice-backed LIFO.  The zero value is an empty stack.
type stack[T any] struct {
	data []T
}

func (s *stack[T]) push(v T) {
	s.data = append(s.data, v)
}

// pop removes and returns the top element.  ok is false when empty.
func (s *stack[T]) pop() (v T, ok bool) {
	if len(s.data) == 0 {
		return v, false
	}
	v, s.data = s.data[len(s.data)-1], s.data[:len(s.data)-1]
	return v, true
}

// peek returns the top element without removing it.
func (s *stack[T]) peek() (v T, ok bool) {
	if len(s.data) == 0 {
		return v, false
	}
	return s.data[len(s.data)-1], true
}

func (s *stack[T]) len() int {
	return len(s.data)
}
