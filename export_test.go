// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

// Queue exposes the window queue to external tests.
type Queue[T any] = queue[T]

// SegmentCapacity is the ring capacity of one queue segment.
const SegmentCapacity = segmentCapacity

func NewQueue[T any]() *Queue[T] {
	q := &queue[T]{}
	q.init()
	return q
}
