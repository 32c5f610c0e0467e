// Package collection provides the container discipline abstraction used by
// graph traversal: one Collection interface, two implementations.
//
// A Queue (FIFO) turns the generic search loop into breadth-first search;
// a Stack (LIFO) turns the same loop into depth-first search. The loop is
// written once against the interface, so the two disciplines can never
// drift apart.
package collection

import "github.com/mdraeger/networks/core"

// Collection is an ordered container of node ids. Push always appends;
// Pop and Peek observe whichever end the discipline dictates.
type Collection interface {
	// Push adds id to the collection.
	Push(id core.NodeID)

	// Pop removes and returns the next id. The bool is false when the
	// collection is empty.
	Pop() (core.NodeID, bool)

	// Peek returns the next id without removing it. The bool is false
	// when the collection is empty.
	Peek() (core.NodeID, bool)

	// Len returns the number of ids currently held.
	Len() int

	// IsEmpty reports whether the collection holds no ids.
	IsEmpty() bool
}

// Queue is a FIFO Collection: Pop and Peek observe the oldest pushed id.
type Queue struct {
	items []core.NodeID
	front int
}

// NewQueue returns an empty Queue with room for initCap ids.
func NewQueue(initCap int) *Queue {
	return &Queue{items: make([]core.NodeID, 0, initCap)}
}

// Push appends id at the back.
func (q *Queue) Push(id core.NodeID) { q.items = append(q.items, id) }

// Pop removes and returns the front id.
func (q *Queue) Pop() (core.NodeID, bool) {
	if q.IsEmpty() {
		return 0, false
	}
	id := q.items[q.front]
	q.front++
	// reclaim the drained prefix once everything has been consumed
	if q.front == len(q.items) {
		q.items = q.items[:0]
		q.front = 0
	}

	return id, true
}

// Peek returns the front id without removing it.
func (q *Queue) Peek() (core.NodeID, bool) {
	if q.IsEmpty() {
		return 0, false
	}

	return q.items[q.front], true
}

// Len returns the number of ids currently queued.
func (q *Queue) Len() int { return len(q.items) - q.front }

// IsEmpty reports whether the queue is empty.
func (q *Queue) IsEmpty() bool { return q.Len() == 0 }

// Stack is a LIFO Collection: Pop and Peek observe the newest pushed id.
type Stack struct {
	items []core.NodeID
}

// NewStack returns an empty Stack with room for initCap ids.
func NewStack(initCap int) *Stack {
	return &Stack{items: make([]core.NodeID, 0, initCap)}
}

// Push appends id at the top.
func (s *Stack) Push(id core.NodeID) { s.items = append(s.items, id) }

// Pop removes and returns the top id.
func (s *Stack) Pop() (core.NodeID, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	id := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return id, true
}

// Peek returns the top id without removing it.
func (s *Stack) Peek() (core.NodeID, bool) {
	if s.IsEmpty() {
		return 0, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of ids currently stacked.
func (s *Stack) Len() int { return len(s.items) }

// IsEmpty reports whether the stack is empty.
func (s *Stack) IsEmpty() bool { return len(s.items) == 0 }

// compile-time interface checks.
var (
	_ Collection = (*Queue)(nil)
	_ Collection = (*Stack)(nil)
)
