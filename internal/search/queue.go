package search

// queue is a FIFO backed by a slice. Popped slots are released and the
// backing array is compacted once more than half of it is dead.
type queue[T any] struct {
	items []T
	head  int
}

func newQueue[T any]() *queue[T] {
	return &queue[T]{items: make([]T, 0, 64)}
}

func (q *queue[T]) push(v T) {
	q.items = append(q.items, v)
}

func (q *queue[T]) pop() T {
	var zero T
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	if q.head > 1024 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return v
}

func (q *queue[T]) empty() bool {
	return q.head == len(q.items)
}

func (q *queue[T]) len() int {
	return len(q.items) - q.head
}
