// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build cgo && webview

package webview

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"code.hybscloud.com/webwin"
	webview "github.com/webview/webview_go"
)

func init() {
	webwin.Register(New())
}

// Platform opens webview_go windows.
type Platform struct{}

// New returns the webview platform.
func New() *Platform {
	return &Platform{}
}

func (p *Platform) Name() string { return Name }

// Capabilities: Cocoa only runs its loop on the main thread. Elsewhere the
// loop runs on a locked window thread, which the process may abandon.
func (p *Platform) Capabilities() webwin.Capability {
	if runtime.GOOS == "darwin" {
		return 0
	}
	return webwin.CapAnyThread | webwin.CapDetach
}

// Init has nothing to set up: webview_go initializes the toolkit per window.
func (p *Platform) Init() error {
	return nil
}

// Open creates the webview on the calling thread, binds the IPC entry point
// and applies the size constraints of cfg.
func (p *Platform) Open(cfg webwin.WindowConfig, sink webwin.Sink) (webwin.Native, error) {
	wv := webview.New(cfg.Debug)
	if wv == nil {
		return nil, errors.New("webview: engine unavailable")
	}
	w := &window{wv: wv, sink: sink, width: cfg.Size.Width, height: cfg.Size.Height, alive: true}
	if err := wv.Bind(webwin.IPCBinding, func(text string) {
		sink.Message(text)
	}); err != nil {
		wv.Destroy()
		return nil, fmt.Errorf("webview: bind %s: %w", webwin.IPCBinding, err)
	}
	wv.Init(webwin.BootstrapScript())
	wv.SetTitle(cfg.Title)
	if !cfg.IsResizable() {
		wv.SetSize(pixels(cfg.Size.Width), pixels(cfg.Size.Height), webview.HintFixed)
		return w, nil
	}
	if !cfg.MinSize.IsZero() {
		wv.SetSize(pixels(cfg.MinSize.Width), pixels(cfg.MinSize.Height), webview.HintMin)
	}
	if !cfg.MaxSize.IsZero() {
		wv.SetSize(pixels(cfg.MaxSize.Width), pixels(cfg.MaxSize.Height), webview.HintMax)
	}
	wv.SetSize(pixels(cfg.Size.Width), pixels(cfg.Size.Height), webview.HintNone)
	return w, nil
}

func pixels(v float64) int {
	return int(math.Round(v))
}

// window adapts webview.WebView to webwin.Native.
type window struct {
	wv   webview.WebView
	sink webwin.Sink

	// width and height track the last requested size: webview_go has no
	// size query.
	width, height float64
	terminated    bool

	mu    sync.RWMutex
	alive bool
}

func (w *window) Run() error {
	if w.terminated {
		return nil
	}
	w.wv.Run()
	return nil
}

// Wake dispatches a Tick onto the UI thread while the webview exists.
func (w *window) Wake() {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.alive {
		return
	}
	w.wv.Dispatch(w.sink.Tick)
}

func (w *window) SetHTML(html string) error {
	w.wv.SetHtml(html)
	return nil
}

func (w *window) SetTitle(title string) {
	w.wv.SetTitle(title)
}

func (w *window) Eval(js string) error {
	w.wv.Eval(js)
	return nil
}

func (w *window) Size() (width, height float64) {
	return w.width, w.height
}

func (w *window) Terminate() {
	w.terminated = true
	w.wv.Terminate()
}

func (w *window) Destroy() {
	w.mu.Lock()
	w.alive = false
	w.mu.Unlock()
	w.wv.Destroy()
}
