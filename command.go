// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import (
	"code.hybscloud.com/kont"
)

// applied is the outcome of dispatching one command on the window thread.
// stop ends the batch after a close; err ends it with a runtime fault.
type applied struct {
	stop bool
	err  error
}

// command is a host request queued for the window thread.
type command interface {
	// effect performs the command as a kont effect.
	effect() kont.Eff[applied]
	op() string
}

// windowDispatcher is the structural interface for window commands.
// DispatchWindow runs on the window thread, which owns the native object.
type windowDispatcher interface {
	DispatchWindow(s *session) applied
}

// tickHandler implements kont.Handler for window commands.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type tickHandler[R any] struct {
	s *session
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h tickHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	wop, ok := op.(windowDispatcher)
	if !ok {
		panic("webwin: unhandled effect in tickHandler")
	}
	h.s.applied++
	return wop.DispatchWindow(h.s), true
}

// batch sequences cmds into one effect program. Commands run in enqueue
// order; a stop or an error short-circuits the rest of the batch.
func batch(cmds []command) kont.Eff[applied] {
	prog := kont.Pure(applied{})
	for i := len(cmds) - 1; i >= 0; i-- {
		next := prog
		prog = kont.Bind(cmds[i].effect(), func(r applied) kont.Eff[applied] {
			if r.stop || r.err != nil {
				return kont.Pure(r)
			}
			return next
		})
	}
	return prog
}

// replaceHTML replaces the displayed document body.
type replaceHTML struct {
	kont.Phantom[applied]
	html string
}

func (c replaceHTML) effect() kont.Eff[applied] { return kont.Perform(c) }
func (replaceHTML) op() string                  { return "replace_html" }

// DispatchWindow renders the body into the document shell and loads it.
func (c replaceHTML) DispatchWindow(s *session) applied {
	return applied{err: s.native.SetHTML(RenderDocument(s.title, c.html))}
}

// closeWindow requests native teardown.
type closeWindow struct {
	kont.Phantom[applied]
}

func (c closeWindow) effect() kont.Eff[applied] { return kont.Perform(c) }
func (closeWindow) op() string                  { return "close" }

// DispatchWindow moves the session to Closing and stops the native loop.
func (closeWindow) DispatchWindow(s *session) applied {
	s.beginClose()
	return applied{stop: true}
}

// setAlert toggles a request for user attention.
type setAlert struct {
	kont.Phantom[applied]
	enabled bool
}

func (c setAlert) effect() kont.Eff[applied] { return kont.Perform(c) }
func (setAlert) op() string                  { return "alert" }

// DispatchWindow is a no-op on natives without Attention.
func (c setAlert) DispatchWindow(s *session) applied {
	if a, ok := s.native.(Attention); ok {
		a.RequestAttention(c.enabled)
	}
	return applied{}
}

// requestSize asks for the logical window size, answered by EventSize.
type requestSize struct {
	kont.Phantom[applied]
}

func (c requestSize) effect() kont.Eff[applied] { return kont.Perform(c) }
func (requestSize) op() string                  { return "size" }

func (requestSize) DispatchWindow(s *session) applied {
	w, h := s.native.Size()
	s.emit(Event{Kind: EventSize, Width: w, Height: h})
	return applied{}
}

// setTitle changes the window title and the title of later documents.
type setTitle struct {
	kont.Phantom[applied]
	title string
}

func (c setTitle) effect() kont.Eff[applied] { return kont.Perform(c) }
func (setTitle) op() string                  { return "title" }

func (c setTitle) DispatchWindow(s *session) applied {
	s.title = c.title
	s.native.SetTitle(c.title)
	return applied{}
}

// evalScript evaluates JavaScript in the current page.
type evalScript struct {
	kont.Phantom[applied]
	js string
}

func (c evalScript) effect() kont.Eff[applied] { return kont.Perform(c) }
func (evalScript) op() string                  { return "eval" }

func (c evalScript) DispatchWindow(s *session) applied {
	return applied{err: s.native.Eval(c.js)}
}
