// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package headless provides an in-memory [webwin.Platform].
//
// Windows have no pixels: the event loop is a goroutine-free select loop on
// the window thread that records every native call. Tests and CI use it to
// drive the bridge, inject page messages, and simulate user actions.
package headless

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/webwin"
)

// inputCapacity bounds pending simulated user actions per window.
const inputCapacity = 256

// Option configures a Platform.
type Option func(*Platform)

// WithCapabilities overrides the reported capabilities.
func WithCapabilities(c webwin.Capability) Option {
	return func(p *Platform) { p.caps = c }
}

// WithInitError makes Init fail with err.
func WithInitError(err error) Option {
	return func(p *Platform) { p.initErr = err }
}

// WithOpenError makes every Open fail with err.
func WithOpenError(err error) Option {
	return func(p *Platform) { p.openErr = err }
}

// WithRunError makes every Run return err immediately.
func WithRunError(err error) Option {
	return func(p *Platform) { p.runErr = err }
}

// WithSetHTML installs a hook called with every document before it is
// loaded. The hook may return an error or panic to simulate native failures.
func WithSetHTML(hook func(doc string) error) Option {
	return func(p *Platform) { p.htmlHook = hook }
}

// Platform is an in-memory webwin.Platform.
type Platform struct {
	caps     webwin.Capability
	initErr  error
	openErr  error
	runErr   error
	htmlHook func(string) error
	inits    atomix.Uint32

	mu      sync.Mutex
	windows []*Window
}

// New returns a Platform that runs on any thread and supports detaching.
func New(opts ...Option) *Platform {
	p := &Platform{caps: webwin.CapAnyThread | webwin.CapDetach}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Platform) Name() string { return "headless" }

func (p *Platform) Capabilities() webwin.Capability { return p.caps }

// Init counts calls and returns the configured init error.
func (p *Platform) Init() error {
	p.inits.Add(1)
	return p.initErr
}

// InitCount returns how many times Init ran.
func (p *Platform) InitCount() int {
	return int(p.inits.Load())
}

// Open builds a recording window.
func (p *Platform) Open(cfg webwin.WindowConfig, sink webwin.Sink) (webwin.Native, error) {
	if p.openErr != nil {
		return nil, p.openErr
	}
	w := &Window{
		sink:   sink,
		hook:   p.htmlHook,
		runErr: p.runErr,
		wake:   make(chan struct{}, 1),
		input:  make(chan func(), inputCapacity),
		title:  cfg.Title,
		width:  cfg.Size.Width,
		height: cfg.Size.Height,
		cursor: webwin.EdgeClient,
	}
	p.mu.Lock()
	p.windows = append(p.windows, w)
	p.mu.Unlock()
	return w, nil
}

// Windows returns every window opened so far, in open order.
func (p *Platform) Windows() []*Window {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Window(nil), p.windows...)
}

// Last returns the most recently opened window, or nil.
func (p *Platform) Last() *Window {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.windows) == 0 {
		return nil
	}
	return p.windows[len(p.windows)-1]
}
