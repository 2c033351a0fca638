package queue

import (
	"fmt"
	"sync"
)

const (
	// DefaultQueueBufferSize is the capacity used when none is given
	DefaultQueueBufferSize = 64
)

// InMemoryQueue implements a bounded in-memory queue.
type InMemoryQueue[T any] struct {
	ch   chan T
	lock sync.Mutex
}

// NewInMemoryQueue creates a new queue that holds at most size items.
func NewInMemoryQueue[T any](size int) *InMemoryQueue[T] {
	if size <= 0 {
		size = DefaultQueueBufferSize
	}
	return &InMemoryQueue[T]{
		ch: make(chan T, size),
	}
}

// Enqueue adds an item to the end of the queue.
// It never blocks; a full queue drops the item and returns an error.
func (q *InMemoryQueue[T]) Enqueue(item T) error {
	q.lock.Lock()
	defer q.lock.Unlock()
	select {
	case q.ch <- item:
		return nil
	default:
		return fmt.Errorf("queue is full (%d items)", cap(q.ch))
	}
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.ch)
}

// ReadAllMessages reads all pending items in the queue in FIFO order.
func (q *InMemoryQueue[T]) ReadAllMessages() ([]T, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	var items []T
	for len(q.ch) > 0 {
		items = append(items, <-q.ch)
	}

	return items, nil
}

// ClearQueue drops all pending items.
func (q *InMemoryQueue[T]) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}
}
