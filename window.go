// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import (
	"context"
	"fmt"

	"code.hybscloud.com/iox"
	"go.uber.org/zap"
)

// Option configures Create.
type Option func(*options)

type options struct {
	platform Platform
	logger   *zap.Logger
	metrics  *Metrics
}

// WithPlatform selects the native platform. Defaults to DefaultPlatform.
func WithPlatform(p Platform) Option {
	return func(o *options) { o.platform = p }
}

// WithLogger sets the logger used by the window thread. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics records window activity into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// Window is the host-side handle of a native window. It holds the consumer
// end of the event queue and the producer end of the command queue.
//
// A Window must be used by one goroutine at a time. Dropping it does not
// close the native window; use RequestClose or Shutdown.
type Window struct {
	serial Serial
	pair   *windowPair
	ctrl   *Controller
}

// Create validates cfg and spawns the window thread. It returns as soon as
// the thread is spawned: native initialization failures arrive later as an
// EventInitFailed event.
//
// Unset title and size are defaulted before validation. Create fails with
// ErrInvalidConfig, ErrUnsupported or ErrMainThread without spawning.
func Create(cfg WindowConfig, opts ...Option) (*Window, error) {
	o := options{platform: DefaultPlatform(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.platform == nil {
		return nil, fmt.Errorf("%w: no platform registered", ErrUnsupported)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	caps := o.platform.Capabilities()
	if cfg.JoinPolicy == JoinDetached && !caps.Has(CapDetach) {
		return nil, fmt.Errorf("%w: %s cannot return control once its loop is entered", ErrUnsupported, o.platform.Name())
	}
	onMain := !caps.Has(CapAnyThread)
	if onMain && !mainActive() {
		return nil, fmt.Errorf("%w: %s runs on the main thread", ErrMainThread, o.platform.Name())
	}

	w := &Window{
		serial: nextSerial(),
		pair:   newWindowPair(),
		ctrl:   newController(cfg.JoinPolicy),
	}
	w.ctrl.close = w.RequestClose
	s := newSession(w.serial, cfg, w.pair, w.ctrl, &o)
	o.metrics.created()
	o.logger.Debug("window created",
		zap.Uint32("window", w.serial),
		zap.String("title", cfg.Title),
		zap.Stringer("join", cfg.JoinPolicy),
		zap.Bool("main_thread", onMain))
	w.ctrl.start(s.run, onMain)
	return w, nil
}

// Serial returns the serial number assigned to this window.
func (w *Window) Serial() Serial {
	return w.serial
}

// Controller returns the window's lifecycle controller.
func (w *Window) Controller() *Controller {
	return w.ctrl
}

// State returns a snapshot of the session state, for diagnostics.
func (w *Window) State() State {
	return w.pair.State()
}

// TryRead returns the next pending event, if any. Never blocks.
// After the terminal event has been read it returns false forever.
func (w *Window) TryRead() (Event, bool) {
	ev, err := w.pair.events.Dequeue()
	if err != nil {
		return Event{}, false
	}
	return ev, true
}

// Next blocks until an event is pending or ctx is done, waiting with
// adaptive backoff (iox.Backoff). Returns ErrChannelClosed once the
// terminal event has been consumed.
func (w *Window) Next(ctx context.Context) (Event, error) {
	var bo iox.Backoff
	for {
		if ev, ok := w.TryRead(); ok {
			return ev, nil
		}
		if w.pair.events.Closed() {
			// Closed is set after the terminal event is queued.
			if ev, ok := w.TryRead(); ok {
				return ev, nil
			}
			return Event{}, ErrChannelClosed
		}
		if err := ctx.Err(); err != nil {
			return Event{}, err
		}
		bo.Wait()
	}
}

// ReplaceContent queues a replacement of the displayed document body.
// Returns ErrChannelClosed after the session terminated.
func (w *Window) ReplaceContent(html string) error {
	if err := validText("html", html); err != nil {
		return err
	}
	return w.send(replaceHTML{html: html})
}

// RequestClose queues a close. Closure is observed as EventClosed.
// Commands queued after a close are accepted but never applied.
func (w *Window) RequestClose() error {
	return w.send(closeWindow{})
}

// SetAlert requests or cancels user attention on the window.
func (w *Window) SetAlert(enabled bool) error {
	return w.send(setAlert{enabled: enabled})
}

// RequestSize queues a size query answered by an EventSize event.
func (w *Window) RequestSize() error {
	return w.send(requestSize{})
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) error {
	if err := validText("title", title); err != nil {
		return err
	}
	return w.send(setTitle{title: title})
}

// Eval queues JavaScript for evaluation in the current page.
func (w *Window) Eval(js string) error {
	if err := validText("js", js); err != nil {
		return err
	}
	return w.send(evalScript{js: js})
}

// IsRunning reports worker liveness. Never blocks.
func (w *Window) IsRunning() bool {
	return w.ctrl.Running()
}

// Done returns a channel closed once the window thread has terminated.
func (w *Window) Done() <-chan struct{} {
	return w.ctrl.Done()
}

// Shutdown requests a close and blocks until the window thread has joined.
func (w *Window) Shutdown() {
	w.ctrl.Shutdown()
}

func (w *Window) send(c command) error {
	if err := w.pair.cmds.Enqueue(c); err != nil {
		return err
	}
	if r := w.pair.native.Load(); r != nil {
		r.n.Wake()
	}
	return nil
}
