// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package headless

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/webwin"
)

// Window is a recording native window. Native methods run on the window
// thread; accessors and simulated user actions are safe from any goroutine.
type Window struct {
	sink   webwin.Sink
	hook   func(string) error
	runErr error
	wake   chan struct{}
	input  chan func()

	stop      bool
	running   atomix.Uint32
	destroyed atomix.Uint32

	mu        sync.Mutex
	doc       string
	history   []string
	title     string
	scripts   []string
	attention bool
	width     float64
	height    float64
	ticks     int
	minimized bool
	maximized bool
	drags     int
	resizes   []webwin.Edge
	cursor    webwin.Edge
}

// Run serves wakes and simulated user actions until Terminate or a
// simulated user close.
func (w *Window) Run() error {
	if w.runErr != nil {
		return w.runErr
	}
	w.running.Store(1)
	defer w.running.Store(0)
	for !w.stop {
		select {
		case <-w.wake:
			w.mu.Lock()
			w.ticks++
			w.mu.Unlock()
			w.sink.Tick()
		case f := <-w.input:
			f()
		}
	}
	return nil
}

// Wake never blocks: a pending wake already covers this one.
func (w *Window) Wake() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *Window) SetHTML(doc string) error {
	if w.hook != nil {
		if err := w.hook(doc); err != nil {
			return err
		}
	}
	w.mu.Lock()
	w.doc = doc
	w.history = append(w.history, doc)
	w.mu.Unlock()
	return nil
}

func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()
}

func (w *Window) Eval(js string) error {
	w.mu.Lock()
	w.scripts = append(w.scripts, js)
	w.mu.Unlock()
	return nil
}

func (w *Window) Size() (width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

func (w *Window) Terminate() {
	w.stop = true
}

func (w *Window) Destroy() {
	w.destroyed.Store(1)
}

// RequestAttention implements webwin.Attention.
func (w *Window) RequestAttention(enabled bool) {
	w.mu.Lock()
	w.attention = enabled
	w.mu.Unlock()
}

// Minimize implements webwin.Chrome.
func (w *Window) Minimize() {
	w.mu.Lock()
	w.minimized = true
	w.mu.Unlock()
}

// ToggleMaximize implements webwin.Chrome.
func (w *Window) ToggleMaximize() {
	w.mu.Lock()
	w.maximized = !w.maximized
	w.mu.Unlock()
}

// StartDrag implements webwin.Chrome.
func (w *Window) StartDrag() {
	w.mu.Lock()
	w.drags++
	w.mu.Unlock()
}

// StartResize implements webwin.Chrome.
func (w *Window) StartResize(edge webwin.Edge) {
	w.mu.Lock()
	w.resizes = append(w.resizes, edge)
	w.mu.Unlock()
}

// SetCursor implements webwin.Chrome.
func (w *Window) SetCursor(edge webwin.Edge) {
	w.mu.Lock()
	w.cursor = edge
	w.mu.Unlock()
}

// Post simulates page content posting text via window.ipc.postMessage.
func (w *Window) Post(text string) {
	w.input <- func() { w.sink.Message(text) }
}

// UserClose simulates the user closing the window: the native loop exits
// on its own, as toolkits do when their last window is destroyed.
func (w *Window) UserClose() {
	w.input <- func() { w.stop = true }
}

// CloseButton simulates a close request the toolkit forwards to the host
// instead of acting on it.
func (w *Window) CloseButton() {
	w.input <- func() { w.sink.CloseRequested() }
}

// Resize simulates the user resizing the window.
func (w *Window) Resize(width, height float64) {
	w.input <- func() {
		w.mu.Lock()
		w.width, w.height = width, height
		w.mu.Unlock()
	}
}

// Do runs f on the window thread. Use it to simulate arbitrary native
// callbacks, including panicking ones.
func (w *Window) Do(f func()) {
	w.input <- f
}

// Document returns the currently loaded document.
func (w *Window) Document() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.doc
}

// History returns every loaded document in load order.
func (w *Window) History() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.history...)
}

// Title returns the current title.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// Scripts returns every evaluated script in order.
func (w *Window) Scripts() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.scripts...)
}

// Attention reports the last attention request.
func (w *Window) Attention() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.attention
}

// Ticks returns how many wakes the loop has served.
func (w *Window) Ticks() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ticks
}

// Minimized reports whether Minimize was called.
func (w *Window) Minimized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.minimized
}

// Maximized reports the maximize toggle state.
func (w *Window) Maximized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.maximized
}

// Drags returns how many drags were started.
func (w *Window) Drags() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.drags
}

// Resizes returns the edges of every started resize.
func (w *Window) Resizes() []webwin.Edge {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]webwin.Edge(nil), w.resizes...)
}

// Cursor returns the edge of the last cursor change.
func (w *Window) Cursor() webwin.Edge {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursor
}

// Running reports whether Run is executing.
func (w *Window) Running() bool {
	return w.running.Load() != 0
}

// Destroyed reports whether Destroy was called.
func (w *Window) Destroyed() bool {
	return w.destroyed.Load() != 0
}
