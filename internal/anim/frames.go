// Package anim drives the simulation from host-delivered frames.
package anim

import "time"

// FrameID identifies a requested frame callback. Zero is never issued.
type FrameID uint64

// FrameFunc receives the host timestamp of the frame being delivered.
type FrameFunc func(now time.Duration)

// Scheduler is the host frame-callback mechanism: a callback requested now runs
// once on a later frame unless cancelled first.
type Scheduler interface {
	Request(fn FrameFunc) FrameID
	Cancel(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is a Scheduler pumped by the host loop, once per displayed frame.
type FrameQueue struct {
	next     FrameID
	pending  []frameRequest
	inflight []frameRequest
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue { return &FrameQueue{} }

// Request queues fn for the next Pump.
func (q *FrameQueue) Request(fn FrameFunc) FrameID {
	q.next++
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

// Cancel drops a queued callback, including one still waiting in the frame
// currently being pumped. Unknown or already-run IDs are ignored.
func (q *FrameQueue) Cancel(id FrameID) {
	for i := range q.inflight {
		if q.inflight[i].id == id {
			q.inflight[i].fn = nil
			return
		}
	}
	for i, req := range q.pending {
		if req.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pump delivers one frame: every callback queued before the call runs once
// with now. Callbacks requested while pumping wait for the next Pump. It
// returns the number of callbacks run.
func (q *FrameQueue) Pump(now time.Duration) int {
	q.inflight, q.pending = q.pending, nil
	ran := 0
	for i := range q.inflight {
		fn := q.inflight[i].fn
		if fn == nil {
			continue
		}
		q.inflight[i].fn = nil
		fn(now)
		ran++
	}
	q.inflight = nil
	return ran
}

// Pending reports how many callbacks wait for the next Pump.
func (q *FrameQueue) Pending() int { return len(q.pending) }
