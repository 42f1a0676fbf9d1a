// Package wqueue is an updatable min-priority queue keyed by item identity.
//
// Each distinct item (Go ==) is present at most once. Add on a present
// item replaces its priority; Pop returns the lowest priority, breaking
// ties by the order of each item's latest Add (first in, first out).
//
// Complexity:
//
//   - Add, Remove, Pop: O(log n)
//   - Contains, Priority, Peek, Len: O(1)
package wqueue

import "container/heap"

// Queue is an updatable min-priority queue. The zero value is not usable;
// create queues with New.
type Queue[K comparable] struct {
	h     entryHeap[K]
	index map[K]*entry[K]
	seq   uint64
}

type entry[K comparable] struct {
	item     K
	priority int64
	seq      uint64 // order of the latest Add
	pos      int    // index in the heap slice
}

// New returns an empty queue.
func New[K comparable]() *Queue[K] {
	return &Queue[K]{index: make(map[K]*entry[K])}
}

// Add inserts item with priority, or moves an existing item to the new
// priority. Either way the item ranks after items already queued at the
// same priority.
func (q *Queue[K]) Add(item K, priority int64) {
	q.seq++
	if e, ok := q.index[item]; ok {
		e.priority = priority
		e.seq = q.seq
		heap.Fix(&q.h, e.pos)
		return
	}
	e := &entry[K]{item: item, priority: priority, seq: q.seq}
	q.index[item] = e
	heap.Push(&q.h, e)
}

// Remove deletes item and reports whether it was queued.
func (q *Queue[K]) Remove(item K) bool {
	e, ok := q.index[item]
	if !ok {
		return false
	}
	heap.Remove(&q.h, e.pos)
	delete(q.index, item)

	return true
}

// Priority returns the queued priority of item.
func (q *Queue[K]) Priority(item K) (int64, bool) {
	e, ok := q.index[item]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// Contains reports whether item is queued.
func (q *Queue[K]) Contains(item K) bool {
	_, ok := q.index[item]
	return ok
}

// Len returns the number of queued items.
func (q *Queue[K]) Len() int { return len(q.h) }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[K]) IsEmpty() bool { return len(q.h) == 0 }

// Peek returns the next item Pop would return without removing it.
func (q *Queue[K]) Peek() (K, int64, bool) {
	if len(q.h) == 0 {
		var zero K
		return zero, 0, false
	}
	e := q.h[0]

	return e.item, e.priority, true
}

// Pop removes and returns the item with the lowest priority.
// ok is false when the queue is empty.
func (q *Queue[K]) Pop() (item K, priority int64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&q.h).(*entry[K])
	delete(q.index, e.item)

	return e.item, e.priority, true
}

// Drain returns a cursor that pops items until the queue is empty.
// Items added while draining are yielded in priority order as well.
func (q *Queue[K]) Drain() *Drain[K] { return &Drain[K]{q: q} }

// Drain is a consuming cursor over a Queue.
type Drain[K comparable] struct {
	q *Queue[K]
}

// Next pops the next item; ok is false once the queue is empty.
func (d *Drain[K]) Next() (K, int64, bool) { return d.q.Pop() }

// entryHeap implements heap.Interface ordered by (priority, seq).
type entryHeap[K comparable] []*entry[K]

func (h entryHeap[K]) Len() int { return len(h) }

func (h entryHeap[K]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

func (h *entryHeap[K]) Push(x interface{}) {
	e := x.(*entry[K])
	e.pos = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[K]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}
