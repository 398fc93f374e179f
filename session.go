// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import (
	"fmt"
	"strings"
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
	"go.uber.org/zap"
)

// State is the lifecycle state of a window session.
type State uint32

const (
	StateInitializing State = iota
	StateRunning
	StateClosing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateClosing:
		return "closing"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", uint32(s))
}

// nativeRef publishes the native object to host goroutines for Wake only.
type nativeRef struct {
	n Native
}

// windowPair holds both queues and the shared state of one window in a
// single allocation. The host produces commands and consumes events;
// the window thread does the opposite.
type windowPair struct {
	events queue[Event]
	cmds   queue[command]
	state  atomix.Uint32
	native atomic.Pointer[nativeRef]
}

func newWindowPair() *windowPair {
	p := &windowPair{}
	p.events.init()
	p.cmds.init()
	return p
}

func (p *windowPair) State() State {
	return State(p.state.Load())
}

// session is the window-thread side of a window. Every field other than
// pair is owned by the window thread.
type session struct {
	serial   Serial
	cfg      WindowConfig
	title    string
	platform Platform
	pair     *windowPair
	ctrl     *Controller
	log      *zap.Logger
	metrics  *Metrics

	native  Native
	batch   []command
	applied int
	fault   error
}

func newSession(serial Serial, cfg WindowConfig, pair *windowPair, ctrl *Controller, o *options) *session {
	return &session{
		serial:   serial,
		cfg:      cfg,
		title:    cfg.Title,
		platform: o.platform,
		pair:     pair,
		ctrl:     ctrl,
		log:      o.logger.With(zap.Uint32("window", serial), zap.String("platform", o.platform.Name())),
		metrics:  o.metrics,
	}
}

// run is the body of the window thread. It never panics.
func (s *session) run() {
	defer s.ctrl.finish()
	s.log.Debug("window thread started")

	n, err := s.open()
	if err != nil {
		s.log.Warn("native init failed", zap.Error(err))
		s.pair.cmds.Close()
		s.setState(StateTerminated)
		s.emit(Event{Kind: EventInitFailed, Err: err})
		s.pair.events.Close()
		s.metrics.initFailed()
		return
	}
	s.native = n
	s.setState(StateRunning)
	s.pair.native.Store(&nativeRef{n: n})
	s.metrics.opened()

	s.loop()

	s.setState(StateClosing)
	s.pair.cmds.Close()
	s.pair.native.Store(nil)
	if dropped := s.discard(); dropped > 0 {
		s.log.Debug("commands skipped after close", zap.Int("count", dropped))
	}
	s.destroy()
	if s.fault != nil {
		s.log.Error("native runtime fault", zap.Error(s.fault))
		s.emit(Event{Kind: EventFault, Err: s.fault})
		s.metrics.faulted()
	}
	s.setState(StateTerminated)
	s.emit(Event{Kind: EventClosed})
	s.pair.events.Close()
	s.metrics.closed()
	s.log.Debug("window thread terminated")
}

// open initializes the platform once and builds the native window with
// its initial document. Panics are converted to ErrNativeInit.
func (s *session) open() (n Native, err error) {
	defer func() {
		if r := recover(); r != nil {
			if n != nil {
				s.destroyNative(n)
			}
			n, err = nil, fmt.Errorf("%w: %v", ErrNativeInit, r)
		}
	}()
	if err := initPlatform(s.platform); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNativeInit, s.platform.Name(), err)
	}
	n, err = s.platform.Open(s.cfg, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNativeInit, s.platform.Name(), err)
	}
	if n == nil {
		return nil, fmt.Errorf("%w: %s returned no window", ErrNativeInit, s.platform.Name())
	}
	if err := n.SetHTML(RenderDocument(s.title, s.cfg.HTML)); err != nil {
		s.destroyNative(n)
		return nil, fmt.Errorf("%w: initial content: %w", ErrNativeInit, err)
	}
	return n, nil
}

// loop applies commands queued before the loop was entered, then blocks
// in the native event loop until it exits.
func (s *session) loop() {
	s.Tick()
	if s.State() != StateRunning {
		return
	}
	s.guard(func() {
		if err := s.native.Run(); err != nil {
			s.fail(fmt.Errorf("%w: %w", ErrNativeFault, err))
		}
	})
	if s.State() == StateRunning {
		s.log.Debug("native loop exited on user close")
	}
}

// Tick implements Sink. Drains every pending command and applies them in
// enqueue order as one effect program.
func (s *session) Tick() {
	s.guard(func() {
		if s.State() != StateRunning {
			return
		}
		for {
			c, err := s.pair.cmds.Dequeue()
			if err != nil {
				break
			}
			s.batch = append(s.batch, c)
		}
		if len(s.batch) == 0 {
			return
		}
		s.applied = 0
		r := kont.Handle(batch(s.batch), tickHandler[applied]{s: s})
		for i, c := range s.batch {
			s.metrics.command(c.op(), i < s.applied)
		}
		if skipped := len(s.batch) - s.applied; skipped > 0 {
			s.log.Debug("commands skipped after close", zap.Int("count", skipped))
		}
		clear(s.batch)
		s.batch = s.batch[:0]
		if r.err != nil {
			s.fail(fmt.Errorf("%w: %w", ErrNativeFault, r.err))
		}
	})
}

// Message implements Sink.
func (s *session) Message(text string) {
	s.guard(func() {
		if s.State() != StateRunning {
			return
		}
		if action, ok := strings.CutPrefix(text, ChromePrefix); ok {
			s.chrome(action)
			return
		}
		s.emit(Event{Kind: EventMessage, Text: text})
	})
}

// CloseRequested implements Sink.
func (s *session) CloseRequested() {
	s.guard(s.beginClose)
}

// beginClose moves Running to Closing and stops the native loop.
func (s *session) beginClose() {
	if s.State() != StateRunning {
		return
	}
	s.setState(StateClosing)
	s.terminateNative()
}

// guard runs f and converts a panic into a runtime fault. Callbacks may be
// entered from native frames, where a panic would take the process down.
func (s *session) guard(f func()) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(fmt.Errorf("%w: %v", ErrNativeFault, r))
		}
	}()
	f()
}

// fail records the first fault and stops the native loop.
func (s *session) fail(err error) {
	if s.fault == nil {
		s.fault = err
	}
	s.setState(StateClosing)
	s.terminateNative()
}

func (s *session) terminateNative() {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("native terminate panicked", zap.Any("panic", r))
		}
	}()
	s.native.Terminate()
}

func (s *session) destroy() {
	s.destroyNative(s.native)
	s.native = nil
}

func (s *session) destroyNative(n Native) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("native destroy panicked", zap.Any("panic", r))
		}
	}()
	n.Destroy()
}

// discard drops commands still queued after the loop exited.
func (s *session) discard() int {
	n := 0
	for {
		c, err := s.pair.cmds.Dequeue()
		if err != nil {
			return n
		}
		s.metrics.command(c.op(), false)
		n++
	}
}

func (s *session) emit(ev Event) {
	if err := s.pair.events.Enqueue(ev); err != nil {
		s.log.Warn("event dropped", zap.Stringer("event", ev), zap.Error(err))
		return
	}
	s.metrics.event(ev.Kind)
}

func (s *session) State() State {
	return s.pair.State()
}

func (s *session) setState(st State) {
	s.pair.state.Store(uint32(st))
}
