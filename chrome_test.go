// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/webwin"
	"code.hybscloud.com/webwin/headless"
)

func TestHitTest(t *testing.T) {
	cases := []struct {
		x, y int
		want webwin.Edge
	}{
		{300, 200, webwin.EdgeClient},
		{0, 200, webwin.EdgeLeft},
		{4, 200, webwin.EdgeLeft},
		{5, 200, webwin.EdgeClient},
		{599, 200, webwin.EdgeRight},
		{595, 200, webwin.EdgeRight},
		{594, 200, webwin.EdgeClient},
		{300, 0, webwin.EdgeTop},
		{300, 399, webwin.EdgeBottom},
		{2, 2, webwin.EdgeTopLeft},
		{598, 1, webwin.EdgeTopRight},
		{1, 398, webwin.EdgeBottomLeft},
		{599, 399, webwin.EdgeBottomRight},
	}
	for _, tc := range cases {
		if got := webwin.HitTest(600, 400, tc.x, tc.y); got != tc.want {
			t.Errorf("HitTest(600x400, %d, %d): got %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
	// Narrower than two insets: left and right overlap.
	if got := webwin.HitTest(8, 400, 4, 200); got != webwin.EdgeNone {
		t.Errorf("HitTest(8x400, 4, 200): got %v, want none", got)
	}
}

func TestEdgeString(t *testing.T) {
	cases := map[webwin.Edge]string{
		webwin.EdgeClient:      "client",
		webwin.EdgeLeft:        "w",
		webwin.EdgeRight:       "e",
		webwin.EdgeTop:         "n",
		webwin.EdgeBottom:      "s",
		webwin.EdgeTopLeft:     "nw",
		webwin.EdgeTopRight:    "ne",
		webwin.EdgeBottomLeft:  "sw",
		webwin.EdgeBottomRight: "se",
		webwin.EdgeNone:        "none",
	}
	for e, want := range cases {
		if e.String() != want {
			t.Errorf("Edge(%d).String(): got %q, want %q", uint8(e), e.String(), want)
		}
	}
	if webwin.EdgeClient.Resizable() || webwin.EdgeNone.Resizable() {
		t.Error("client and none must not be resizable")
	}
	if !webwin.EdgeBottomRight.Resizable() {
		t.Error("bottom right must be resizable")
	}
}

func TestChromeMessages(t *testing.T) {
	p := headless.New()
	w := open(t, webwin.WindowConfig{Size: webwin.Size{Width: 600, Height: 400}, Frameless: true}, p)
	hw := native(t, p)

	msgs := []string{
		"input!minimize",
		"input!maximize",
		"input!drag_window",
		"input!mousedown:2,2",
		"input!mousedown:300,200",
		"input!mousedown:bogus",
		"input!mousemove:599,200",
		"input!unknown",
		"marker",
	}
	for _, m := range msgs {
		hw.Post(m)
	}
	// Chrome messages never reach the host.
	ev := next(t, w)
	if ev.Kind != webwin.EventMessage || ev.Text != "marker" {
		t.Fatalf("event: got %v, want message(marker)", ev)
	}
	if !hw.Minimized() {
		t.Error("minimize not applied")
	}
	if !hw.Maximized() {
		t.Error("maximize not applied")
	}
	if hw.Drags() != 1 {
		t.Errorf("drags: got %d, want 1", hw.Drags())
	}
	if got := hw.Resizes(); !slices.Equal(got, []webwin.Edge{webwin.EdgeTopLeft}) {
		t.Errorf("resizes: got %v, want [nw]", got)
	}
	if hw.Cursor() != webwin.EdgeRight {
		t.Errorf("cursor: got %v, want e", hw.Cursor())
	}

	hw.Post("input!close")
	evs := untilTerminal(t, w)
	if !slices.Equal(kinds(evs), []webwin.EventKind{webwin.EventClosed}) {
		t.Fatalf("events: got %v, want [closed]", evs)
	}
}
