// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import (
	"strings"
	"sync"
)

// Capability is a set of platform capability flags.
type Capability uint32

const (
	// CapAnyThread: the native loop may run on any locked OS thread.
	// Without it, sessions run on the process main thread inside Main.
	CapAnyThread Capability = 1 << iota
	// CapDetach: the process may exit while the native loop runs.
	// Required by JoinDetached.
	CapDetach
)

// Has reports whether all flags in f are set.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

func (c Capability) String() string {
	var parts []string
	if c.Has(CapAnyThread) {
		parts = append(parts, "any_thread")
	}
	if c.Has(CapDetach) {
		parts = append(parts, "detach")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Platform constructs native windows.
// Implementations must be comparable (typically a pointer type).
type Platform interface {
	Name() string
	Capabilities() Capability
	// Init initializes the process-wide native subsystem.
	// It is called at most once per Platform value, on a window thread.
	Init() error
	// Open builds a native window on the calling thread.
	// The returned Native is confined to that thread.
	Open(cfg WindowConfig, sink Sink) (Native, error)
}

// Sink receives native callbacks. Methods are called on the window thread.
type Sink interface {
	// Tick drains and applies pending commands.
	Tick()
	// Message delivers a message posted by page content.
	Message(text string)
	// CloseRequested reports a user-initiated close that the platform
	// did not already act on.
	CloseRequested()
}

// Native is a native window object. Every method except Wake must be
// called on the thread that opened it.
type Native interface {
	// Run enters the native event loop and returns once it exits, either
	// after Terminate or after the user closed the window.
	Run() error
	// Wake schedules a Sink.Tick on the window thread. Safe from any
	// goroutine at any time, including after Destroy, where it is a no-op.
	Wake()
	SetHTML(html string) error
	SetTitle(title string)
	Eval(js string) error
	// Size returns the logical inner size.
	Size() (width, height float64)
	// Terminate makes Run return. Calling it before Run is allowed.
	Terminate()
	Destroy()
}

// Attention is implemented by natives that can request user attention.
type Attention interface {
	RequestAttention(enabled bool)
}

// Chrome is implemented by natives that support frameless window chrome
// driven by page messages.
type Chrome interface {
	Minimize()
	ToggleMaximize()
	StartDrag()
	StartResize(edge Edge)
	SetCursor(edge Edge)
}

var (
	defaultMu       sync.RWMutex
	defaultPlatform Platform
)

// Register sets the platform used by Create when no WithPlatform option is
// given. Platform packages call it from init.
func Register(p Platform) {
	defaultMu.Lock()
	defaultPlatform = p
	defaultMu.Unlock()
}

// DefaultPlatform returns the registered platform, or nil.
func DefaultPlatform() Platform {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultPlatform
}
