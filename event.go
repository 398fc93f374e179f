// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import "fmt"

// EventKind discriminates Event values.
type EventKind uint8

const (
	// EventMessage carries a text message posted by page content.
	EventMessage EventKind = iota + 1
	// EventClosed is the final event of a window that started.
	EventClosed
	// EventInitFailed is the only terminal event of a window that never
	// started. Err wraps ErrNativeInit.
	EventInitFailed
	// EventFault reports a runtime failure of the native loop. Err wraps
	// ErrNativeFault. EventClosed follows.
	EventFault
	// EventSize answers RequestSize with the logical window size.
	EventSize
)

var eventKindNames = [...]string{
	EventMessage:    "message",
	EventClosed:     "closed",
	EventInitFailed: "init_failed",
	EventFault:      "fault",
	EventSize:       "size",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) && eventKindNames[k] != "" {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a value produced by the window thread for the host.
type Event struct {
	Kind   EventKind
	Text   string
	Err    error
	Width  float64
	Height float64
}

// Terminal reports whether no event follows e.
func (e Event) Terminal() bool {
	return e.Kind == EventClosed || e.Kind == EventInitFailed
}

func (e Event) String() string {
	switch e.Kind {
	case EventMessage:
		return fmt.Sprintf("message(%q)", e.Text)
	case EventInitFailed, EventFault:
		return fmt.Sprintf("%s(%v)", e.Kind, e.Err)
	case EventSize:
		return fmt.Sprintf("size(%vx%v)", e.Width, e.Height)
	}
	return e.Kind.String()
}
