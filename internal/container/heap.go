package container

import "container/heap"

// MinHeap is a binary min-heap over values of type T, ordered by a
// caller-supplied less function. It wraps container/heap the same way a
// typical Dijkstra priority queue does, generalized from a single hardcoded
// element type to any T via generics.
type MinHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewMinHeap returns an empty heap ordered by less.
func NewMinHeap[T any](less func(a, b T) bool) *MinHeap[T] {
	return &MinHeap[T]{less: less}
}

// Len reports the number of items currently in the heap.
func (h *MinHeap[T]) Len() int { return len(h.items) }

// Push inserts v into the heap.
func (h *MinHeap[T]) Push(v T) {
	heap.Push((*innerHeap[T])(h), v)
}

// Pop removes and returns the smallest item. It panics if the heap is empty.
func (h *MinHeap[T]) Pop() T {
	return heap.Pop((*innerHeap[T])(h)).(T)
}

// innerHeap adapts MinHeap to container/heap.Interface without exposing
// Less/Swap/Push/Pop on the public type.
type innerHeap[T any] MinHeap[T]

func (h *innerHeap[T]) Len() int            { return len(h.items) }
func (h *innerHeap[T]) Less(i, j int) bool  { return h.less(h.items[i], h.items[j]) }
func (h *innerHeap[T]) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *innerHeap[T]) Push(x any)          { h.items = append(h.items, x.(T)) }
func (h *innerHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}
