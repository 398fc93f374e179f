// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// segmentCapacity is the bounded capacity of one ring segment.
// A full segment is never waited on: the producer links a fresh one,
// so the native loop is never stalled by a slow host.
const segmentCapacity = 64

// segment is one bounded SPSC ring in a queue's segment chain.
type segment[T any] struct {
	ring lfq.SPSC[T]
	next atomic.Pointer[segment[T]]
}

func newSegment[T any]() *segment[T] {
	s := &segment[T]{}
	s.ring.Init(segmentCapacity)
	return s
}

// queue is an unbounded single-producer single-consumer queue.
// Enqueue never blocks. Dequeue is non-blocking: it returns
// iox.ErrWouldBlock when no value is pending.
//
// The producer owns tail and slot; the consumer owns head. Once the
// producer links a new segment it never writes the old one again, so a
// consumer that observes next != nil can drain the old ring and move on.
type queue[T any] struct {
	head   *segment[T]
	tail   *segment[T]
	slot   T
	closed atomix.Uint32
}

func (q *queue[T]) init() {
	s := newSegment[T]()
	q.head = s
	q.tail = s
}

// Enqueue appends v. Returns ErrChannelClosed once the queue is closed.
func (q *queue[T]) Enqueue(v T) error {
	if q.closed.Load() != 0 {
		return ErrChannelClosed
	}
	var zero T
	q.slot = v
	if err := q.tail.ring.Enqueue(&q.slot); err != nil {
		s := newSegment[T]()
		if err := s.ring.Enqueue(&q.slot); err != nil {
			q.slot = zero
			return err
		}
		q.tail.next.Store(s)
		q.tail = s
	}
	q.slot = zero
	return nil
}

// Dequeue removes the oldest value.
// Returns iox.ErrWouldBlock when the queue is empty.
func (q *queue[T]) Dequeue() (T, error) {
	for {
		v, err := q.head.ring.Dequeue()
		if err == nil {
			return v, nil
		}
		next := q.head.next.Load()
		if next == nil {
			var zero T
			return zero, iox.ErrWouldBlock
		}
		// Values written before the link are visible now.
		if v, err := q.head.ring.Dequeue(); err == nil {
			return v, nil
		}
		q.head = next
	}
}

// Close marks the queue closed for producers. Pending values stay readable.
func (q *queue[T]) Close() {
	q.closed.Store(1)
}

// Closed reports whether Close has been called.
func (q *queue[T]) Closed() bool {
	return q.closed.Load() != 0
}
