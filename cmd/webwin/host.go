// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"code.hybscloud.com/webwin"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// maxLine bounds one stdin command, documents included.
const maxLine = 16 << 20

// eventLine is the JSON form of an event on stdout.
type eventLine struct {
	Event  string  `json:"event"`
	Window uint32  `json:"window"`
	Text   string  `json:"text,omitempty"`
	Error  string  `json:"error,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// host is the cooperative host loop: it owns the window handle, polls
// events on a ticker and applies commands read from stdin.
type host struct {
	w     *webwin.Window
	in    io.Reader
	enc   *json.Encoder
	log   *zap.Logger
	fault error
}

func newHost(w *webwin.Window, in io.Reader, out io.Writer, lg *zap.Logger) *host {
	return &host{w: w, in: in, enc: json.NewEncoder(out), log: lg}
}

// run returns once the terminal event has been written. A cancelled ctx
// shuts the window down first. The error is the init failure or runtime
// fault that ended the window, if any.
func (h *host) run(ctx context.Context, poll time.Duration) error {
	lines := make(chan string)
	stop := make(chan struct{})
	defer close(stop)
	go h.scan(lines, stop)

	t := time.NewTicker(poll)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			h.log.Info("shutting down window", zap.Error(ctx.Err()))
			h.w.Shutdown()
			return h.drain()
		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			if err := h.apply(line); err != nil {
				h.log.Warn("command rejected", zap.String("line", line), zap.Error(err))
			}
		case <-t.C:
		}
		if done, err := h.flush(); done {
			return err
		}
	}
}

// scan forwards stdin lines until EOF or stop. It never touches the window.
func (h *host) scan(lines chan<- string, stop <-chan struct{}) {
	defer close(lines)
	sc := bufio.NewScanner(h.in)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		select {
		case lines <- sc.Text():
		case <-stop:
			return
		}
	}
	if err := sc.Err(); err != nil {
		h.log.Warn("stdin read failed", zap.Error(err))
	}
}

// apply decodes one command line and forwards it to the window.
func (h *host) apply(line string) error {
	if !gjson.Valid(line) {
		return errors.New("malformed JSON")
	}
	r := gjson.Parse(line)
	switch op := r.Get("op").String(); op {
	case "replace_html":
		return h.w.ReplaceContent(r.Get("html").String())
	case "close":
		return h.w.RequestClose()
	case "alert":
		enabled := r.Get("enabled")
		return h.w.SetAlert(!enabled.Exists() || enabled.Bool())
	case "size":
		return h.w.RequestSize()
	case "title":
		return h.w.SetTitle(r.Get("title").String())
	case "eval":
		return h.w.Eval(r.Get("js").String())
	default:
		return fmt.Errorf("unknown op %q", op)
	}
}

// flush writes every pending event. It reports done after the terminal
// event, with the error that ended the window.
func (h *host) flush() (bool, error) {
	for {
		ev, ok := h.w.TryRead()
		if !ok {
			return false, nil
		}
		h.write(ev)
		switch ev.Kind {
		case webwin.EventFault:
			h.fault = ev.Err
		case webwin.EventInitFailed:
			return true, ev.Err
		case webwin.EventClosed:
			return true, h.fault
		}
	}
}

// drain writes the remaining events of a terminated window.
func (h *host) drain() error {
	for {
		ev, ok := h.w.TryRead()
		if !ok {
			return h.fault
		}
		h.write(ev)
		if ev.Kind == webwin.EventFault || ev.Kind == webwin.EventInitFailed {
			h.fault = ev.Err
		}
	}
}

func (h *host) write(ev webwin.Event) {
	line := eventLine{
		Event:  ev.Kind.String(),
		Window: h.w.Serial(),
		Text:   ev.Text,
		Width:  ev.Width,
		Height: ev.Height,
	}
	if ev.Err != nil {
		line.Error = ev.Err.Error()
	}
	if err := h.enc.Encode(line); err != nil {
		h.log.Warn("event write failed", zap.Stringer("event", ev), zap.Error(err))
	}
}
