// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !cgo || !webview

package webview_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code.hybscloud.com/webwin"
	"code.hybscloud.com/webwin/webview"
)

func TestStubInitFails(t *testing.T) {
	p := webview.New()
	if p.Name() != webview.Name {
		t.Fatalf("Name: got %q, want %q", p.Name(), webview.Name)
	}
	if err := p.Init(); !errors.Is(err, webview.ErrUnavailable) {
		t.Fatalf("Init: got %v, want ErrUnavailable", err)
	}
}

func TestStubWindowReportsInitFailed(t *testing.T) {
	w, err := webwin.Create(webwin.WindowConfig{HTML: "<p>x</p>"}, webwin.WithPlatform(webview.New()))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ev, err := w.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ev.Kind != webwin.EventInitFailed {
		t.Fatalf("event: got %v, want init_failed", ev.Kind)
	}
	if !errors.Is(ev.Err, webwin.ErrNativeInit) || !errors.Is(ev.Err, webview.ErrUnavailable) {
		t.Fatalf("event error: got %v", ev.Err)
	}
	if _, err := w.Next(ctx); !errors.Is(err, webwin.ErrChannelClosed) {
		t.Fatalf("Next after terminal: got %v, want ErrChannelClosed", err)
	}
}
