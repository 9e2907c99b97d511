package stack

// Stack is a generic LIFO used by the depth-first traversal iterators.
// It is not synchronized; the engines that use it are single-threaded.
type Stack[T any] interface {
	Push(v T)
	Pop() (T, bool)
	Top() (T, bool)
	Size() int
}

type stack[T any] struct {
	s []T
}

func New[T any](initialSize int) Stack[T] {
	return &stack[T]{make([]T, 0, initialSize)}
}

func (s *stack[T]) Push(value T) {
	s.s = append(s.s, value)
}

func (s *stack[T]) Pop() (value T, ok bool) {
	l := len(s.s)
	if l == 0 {
		return value, false
	}

	value = s.s[l-1]
	s.s = s.s[:l-1]
	return value, true
}

func (s *stack[T]) Top() (value T, ok bool) {
	l := len(s.s)
	if l == 0 {
		return value, false
	}
	return s.s[l-1], true
}

func (s *stack[T]) Size() int {
	return len(s.s)
}
