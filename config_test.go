// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/webwin"
)

func TestWithDefaults(t *testing.T) {
	cfg := webwin.WindowConfig{}.WithDefaults()
	if cfg.Title != webwin.DefaultTitle {
		t.Fatalf("Title: got %q, want %q", cfg.Title, webwin.DefaultTitle)
	}
	if cfg.Size != (webwin.Size{Width: webwin.DefaultWidth, Height: webwin.DefaultHeight}) {
		t.Fatalf("Size: got %v", cfg.Size)
	}
	if !cfg.IsResizable() {
		t.Fatal("IsResizable: got false by default")
	}

	keep := webwin.WindowConfig{Title: "x", Size: webwin.Size{Width: 1, Height: 2}}.WithDefaults()
	if keep.Title != "x" || keep.Size != (webwin.Size{Width: 1, Height: 2}) {
		t.Fatalf("WithDefaults overwrote set fields: %+v", keep)
	}
}

func TestValidateBoundaries(t *testing.T) {
	fixed := false
	ok := []webwin.WindowConfig{
		{Size: webwin.Size{Width: 400, Height: 400}, MinSize: webwin.Size{Width: 400, Height: 400}},
		{Size: webwin.Size{Width: 800, Height: 800}, MaxSize: webwin.Size{Width: 800, Height: 800}},
		{Size: webwin.Size{Width: 600, Height: 400}, MinSize: webwin.Size{Width: 400, Height: 400}},
		{Size: webwin.Size{Width: 1, Height: 1}, Resizable: &fixed, JoinPolicy: webwin.JoinDetached},
		{Title: "日本語", HTML: "<p>ü</p>"},
	}
	for _, cfg := range ok {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate(%+v): %v", cfg, err)
		}
	}
	bad := webwin.WindowConfig{Size: webwin.Size{Width: 600, Height: 399}, MinSize: webwin.Size{Width: 400, Height: 400}}
	if err := bad.Validate(); !errors.Is(err, webwin.ErrInvalidConfig) {
		t.Errorf("Validate: got %v, want ErrInvalidConfig", err)
	}
}

func TestParseJoinPolicy(t *testing.T) {
	cases := map[string]webwin.JoinPolicy{
		"":          webwin.JoinWait,
		"wait":      webwin.JoinWait,
		" Detached": webwin.JoinDetached,
	}
	for in, want := range cases {
		got, err := webwin.ParseJoinPolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseJoinPolicy(%q): got (%v, %v), want %v", in, got, err, want)
		}
	}
	if _, err := webwin.ParseJoinPolicy("never"); !errors.Is(err, webwin.ErrInvalidConfig) {
		t.Errorf("ParseJoinPolicy(never): got %v, want ErrInvalidConfig", err)
	}
	if webwin.JoinWait.String() != "wait" || webwin.JoinDetached.String() != "detached" {
		t.Error("JoinPolicy names changed")
	}
}

func TestCapabilityString(t *testing.T) {
	cases := map[webwin.Capability]string{
		0:                                     "none",
		webwin.CapAnyThread:                   "any_thread",
		webwin.CapDetach:                      "detach",
		webwin.CapAnyThread | webwin.CapDetach: "any_thread|detach",
	}
	for c, want := range cases {
		if c.String() != want {
			t.Errorf("Capability(%d): got %q, want %q", uint32(c), c.String(), want)
		}
	}
}

func TestEventString(t *testing.T) {
	cases := []struct {
		ev   webwin.Event
		want string
	}{
		{webwin.Event{Kind: webwin.EventMessage, Text: "hi"}, `message("hi")`},
		{webwin.Event{Kind: webwin.EventClosed}, "closed"},
		{webwin.Event{Kind: webwin.EventFault, Err: errors.New("x")}, "fault(x)"},
		{webwin.Event{Kind: webwin.EventSize, Width: 3, Height: 4}, "size(3x4)"},
		{webwin.Event{Kind: 99}, "EventKind(99)"},
	}
	for _, tc := range cases {
		if got := tc.ev.String(); got != tc.want {
			t.Errorf("String: got %q, want %q", got, tc.want)
		}
	}
	if !(webwin.Event{Kind: webwin.EventInitFailed}).Terminal() || (webwin.Event{Kind: webwin.EventFault}).Terminal() {
		t.Error("Terminal: init_failed must be terminal, fault must not")
	}
}
