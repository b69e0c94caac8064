// Package anim drives per-frame simulation ticks from a display refresh queue.
//
// Everything here runs on one goroutine: the host's step loop flushes the
// queue once per display refresh, and callbacks may request or cancel frames
// while a flush is in progress.
package anim

import "time"

// FrameHandle identifies a requested frame callback. The zero handle is never
// issued.
type FrameHandle uint64

// FrameFunc runs on the next display refresh.
type FrameFunc func(now time.Time)

// Frames is the "run after next display refresh" primitive.
type Frames interface {
	RequestFrame(fn FrameFunc) FrameHandle
	CancelFrame(h FrameHandle)
}

type frameEntry struct {
	h  FrameHandle
	fn FrameFunc
}

// FrameQueue is a Frames implementation flushed by the host once per refresh.
type FrameQueue struct {
	last    FrameHandle
	pending []frameEntry
	// running is the batch of the flush in progress.
	running []frameEntry
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame schedules fn for the next Flush. A request made from inside a
// callback runs on the flush after the current one.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameHandle {
	if fn == nil {
		return 0
	}
	q.last++
	q.pending = append(q.pending, frameEntry{h: q.last, fn: fn})
	return q.last
}

// CancelFrame drops a requested callback. Cancelling a handle that already ran
// or was never issued is a no-op.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	if h == 0 {
		return
	}
	for i := range q.running {
		if q.running[i].h == h {
			q.running[i].fn = nil
			return
		}
	}
	for i := range q.pending {
		if q.pending[i].h == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Flush runs the callbacks requested before the call, in request order, and
// returns how many ran.
func (q *FrameQueue) Flush(now time.Time) int {
	if len(q.pending) == 0 {
		return 0
	}
	batch := q.pending
	q.pending = nil
	q.running = batch
	// A panicking callback drops the rest of the batch.
	defer func() { q.running = nil }()

	n := 0
	for i := range batch {
		fn := batch[i].fn
		if fn == nil {
			continue
		}
		batch[i].fn = nil
		fn(now)
		n++
	}
	return n
}

// Pending returns the number of callbacks waiting for the next flush.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
