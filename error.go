// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import "errors"

var (
	// ErrInvalidConfig reports a WindowConfig or text payload that violates
	// an invariant. Returned synchronously; no thread is spawned.
	ErrInvalidConfig = errors.New("webwin: invalid config")

	// ErrNativeInit reports that the native window or engine could not be
	// constructed. Delivered asynchronously in an EventInitFailed event.
	ErrNativeInit = errors.New("webwin: native init failure")

	// ErrChannelClosed reports an operation on a window whose session has
	// already terminated.
	ErrChannelClosed = errors.New("webwin: channel closed")

	// ErrNativeFault reports an unexpected failure inside a running native
	// event loop. Delivered in an EventFault event before EventClosed.
	ErrNativeFault = errors.New("webwin: native runtime fault")

	// ErrUnsupported reports a request the platform cannot honor, such as
	// JoinDetached on a toolkit that never returns from its loop.
	ErrUnsupported = errors.New("webwin: unsupported by platform")

	// ErrMainThread reports a platform that needs the process main thread
	// while Main is not running.
	ErrMainThread = errors.New("webwin: platform requires Main")
)
