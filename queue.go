package gesture

import "errors"

// ErrEmptyQueue is returned when the head of an empty pending queue is requested.
var ErrEmptyQueue = errors.New("gesture: pending queue is empty")

// pendingQueue is the ordered buffer of samples awaiting forwarding or an ack.
// Samples are pool-owned copies; nothing outside the queue aliases them.
// Only the head can be in flight toward the consumer.
type pendingQueue struct {
	items []*MotionSample
	pool  *samplePool
}

func (q *pendingQueue) len() int {
	return len(q.items)
}

func (q *pendingQueue) peekHead() *MotionSample {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

func (q *pendingQueue) peekTail() *MotionSample {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[len(q.items)-1]
}

// push appends a pooled copy of s and reports whether the queue was empty
// before the append.
func (q *pendingQueue) push(s *MotionSample) bool {
	wasEmpty := len(q.items) == 0
	q.items = append(q.items, q.pool.acquireCopy(s))
	return wasEmpty
}

// coalesce merges a Move into the tail when the tail is a Move with the same
// pointer count that is not the head. Reports whether s was merged.
func (q *pendingQueue) coalesce(s *MotionSample) bool {
	if s.Action != ActionMove || len(q.items) < 2 {
		return false
	}
	tail := q.items[len(q.items)-1]
	if tail.Action != ActionMove || tail.PointerCount() != s.PointerCount() {
		return false
	}
	tail.addBatch(s)
	return true
}

// dequeueHead removes and returns the head. The caller owns the returned
// sample and must hand it back with recycle once done.
func (q *pendingQueue) dequeueHead() (*MotionSample, error) {
	if len(q.items) == 0 {
		return nil, ErrEmptyQueue
	}
	s := q.items[0]
	copy(q.items, q.items[1:])
	q.items[len(q.items)-1] = nil
	q.items = q.items[:len(q.items)-1]
	return s, nil
}

func (q *pendingQueue) recycle(s *MotionSample) {
	q.pool.release(s)
}

// clear drops every pending sample without processing it.
func (q *pendingQueue) clear() {
	for i, s := range q.items {
		q.pool.release(s)
		q.items[i] = nil
	}
	q.items = q.items[:0]
}
