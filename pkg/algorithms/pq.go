package algorithms

import (
	"container/heap"

	"github.com/tracestep/tracestep/pkg/trace"
)

// pqItem is one (vertex, priority) entry in the queue.
type pqItem struct {
	id       string
	priority trace.Distance
	seq      int // insertion order, breaks priority ties
	index    int // heap slot, maintained by pqHeap
}

// pqHeap implements heap.Interface over pqItem pointers.
type pqHeap []*pqItem

func (h pqHeap) Len() int { return len(h) }

func (h pqHeap) Less(i, j int) bool {
	// No secondary key is defined for equal priorities, so ties fall back
	// to insertion order. Callers must not rely on any other ordering.
	if h[i].priority == h[j].priority {
		return h[i].seq < h[j].seq
	}
	return h[i].priority < h[j].priority
}

func (h pqHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *pqHeap) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *pqHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// minQueue is the minimum-priority selection structure used by Dijkstra.
// All operations are synchronous; it is never shared across goroutines.
type minQueue struct {
	heap    pqHeap
	byID    map[string]*pqItem
	nextSeq int
}

func newMinQueue() *minQueue {
	return &minQueue{
		heap: make(pqHeap, 0),
		byID: make(map[string]*pqItem),
	}
}

// Len returns the number of queued vertices.
func (q *minQueue) Len() int { return len(q.heap) }

// Insert adds a vertex with the given priority. The caller is responsible
// for not inserting a vertex that is already queued; use Contains first.
func (q *minQueue) Insert(id string, priority trace.Distance) {
	item := &pqItem{id: id, priority: priority, seq: q.nextSeq}
	q.nextSeq++
	q.byID[id] = item
	heap.Push(&q.heap, item)
}

// ExtractMin removes and returns the vertex with the smallest priority,
// ties broken by insertion order. ok is false when the queue is empty.
func (q *minQueue) ExtractMin() (id string, ok bool) {
	if len(q.heap) == 0 {
		return "", false
	}
	item := heap.Pop(&q.heap).(*pqItem)
	delete(q.byID, item.id)
	return item.id, true
}

// Contains reports whether the vertex is currently queued.
func (q *minQueue) Contains(id string) bool {
	_, ok := q.byID[id]
	return ok
}

// DecreasePriority lowers the priority of a queued vertex and restores the
// heap ordering. It is a no-op when the vertex is absent.
func (q *minQueue) DecreasePriority(id string, priority trace.Distance) {
	item, ok := q.byID[id]
	if !ok {
		return
	}
	item.priority = priority
	heap.Fix(&q.heap, item.index)
}
