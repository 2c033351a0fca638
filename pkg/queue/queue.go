package queue

// Queue represents a basic FIFO queue of pending items.
type Queue[T any] interface {
	Enqueue(item T) error
	Size() int
	ReadAllMessages() ([]T, error)
	ClearQueue()
}
