package queue

// Queue is a generic FIFO used by the level-order traversal iterator.
// Like stack.Stack it is unsynchronized.
type Queue[T any] interface {
	Push(v T)
	Pop() (T, bool)
	Size() int
}

type queue[T any] struct {
	s []T
}

func New[T any](initialSize int) Queue[T] {
	return &queue[T]{make([]T, 0, initialSize)}
}

func (q *queue[T]) Push(value T) {
	q.s = append(q.s, value)
}

func (q *queue[T]) Pop() (value T, ok bool) {
	if len(q.s) == 0 {
		return value, false
	}

	value = q.s[0]
	q.s = q.s[1:]
	return value, true
}

func (q *queue[T]) Size() int {
	return len(q.s)
}
