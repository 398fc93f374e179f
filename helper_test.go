// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin_test

import (
	"context"
	"testing"
	"time"

	"code.hybscloud.com/webwin"
	"code.hybscloud.com/webwin/headless"
)

// waitTimeout bounds every wait on the window thread.
const waitTimeout = 5 * time.Second

// open creates a window on p and shuts it down at test end.
func open(tb testing.TB, cfg webwin.WindowConfig, p *headless.Platform, opts ...webwin.Option) *webwin.Window {
	tb.Helper()
	w, err := webwin.Create(cfg, append([]webwin.Option{webwin.WithPlatform(p)}, opts...)...)
	if err != nil {
		tb.Fatalf("Create: %v", err)
	}
	tb.Cleanup(w.Shutdown)
	return w
}

// native waits until p has opened a window and returns it.
func native(tb testing.TB, p *headless.Platform) *headless.Window {
	tb.Helper()
	var hw *headless.Window
	waitFor(tb, "native window", func() bool {
		hw = p.Last()
		return hw != nil
	})
	return hw
}

// waitFor polls cond until it holds or waitTimeout elapses.
func waitFor(tb testing.TB, what string, cond func() bool) {
	tb.Helper()
	deadline := time.Now().Add(waitTimeout)
	for !cond() {
		if time.Now().After(deadline) {
			tb.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

// next returns the next event, failing the test on timeout or close.
func next(tb testing.TB, w *webwin.Window) webwin.Event {
	tb.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	ev, err := w.Next(ctx)
	if err != nil {
		tb.Fatalf("Next: %v", err)
	}
	return ev
}

// untilTerminal reads events up to and including the terminal one.
func untilTerminal(tb testing.TB, w *webwin.Window) []webwin.Event {
	tb.Helper()
	var evs []webwin.Event
	for {
		ev := next(tb, w)
		evs = append(evs, ev)
		if ev.Terminal() {
			return evs
		}
	}
}

// joined waits until the window thread has terminated.
func joined(tb testing.TB, w *webwin.Window) {
	tb.Helper()
	select {
	case <-w.Done():
	case <-time.After(waitTimeout):
		tb.Fatalf("window %d did not terminate", w.Serial())
	}
}

func kinds(evs []webwin.Event) []webwin.EventKind {
	ks := make([]webwin.EventKind, len(evs))
	for i, ev := range evs {
		ks[i] = ev.Kind
	}
	return ks
}
