// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ChromePrefix marks page messages that drive frameless window chrome.
// Such messages are consumed by the window thread and never reach the host:
//
//	input!minimize
//	input!maximize
//	input!drag_window
//	input!close
//	input!mousedown:x,y
//	input!mousemove:x,y
const ChromePrefix = "input!"

// resizeInset is the width in logical pixels of the borderless resize band.
const resizeInset = 5

// Edge is a window border region found by HitTest.
type Edge uint8

const (
	EdgeClient      Edge = 0
	EdgeLeft        Edge = 1
	EdgeRight       Edge = 2
	EdgeTop         Edge = 4
	EdgeBottom      Edge = 8
	EdgeTopLeft     Edge = EdgeTop | EdgeLeft
	EdgeTopRight    Edge = EdgeTop | EdgeRight
	EdgeBottomLeft  Edge = EdgeBottom | EdgeLeft
	EdgeBottomRight Edge = EdgeBottom | EdgeRight
	// EdgeNone is returned for points that match opposite borders at once,
	// which only happens on windows narrower than two insets.
	EdgeNone Edge = 0xff
)

func (e Edge) String() string {
	switch e {
	case EdgeClient:
		return "client"
	case EdgeLeft:
		return "w"
	case EdgeRight:
		return "e"
	case EdgeTop:
		return "n"
	case EdgeBottom:
		return "s"
	case EdgeTopLeft:
		return "nw"
	case EdgeTopRight:
		return "ne"
	case EdgeBottomLeft:
		return "sw"
	case EdgeBottomRight:
		return "se"
	}
	return "none"
}

// Resizable reports whether e is a border a drag can resize from.
func (e Edge) Resizable() bool {
	return e != EdgeClient && e != EdgeNone
}

// HitTest classifies the point (x, y) of a window with the given logical
// size against a borderless resize band of resizeInset pixels.
func HitTest(width, height float64, x, y int) Edge {
	w, h := int(width), int(height)
	var e Edge
	if x < resizeInset {
		e |= EdgeLeft
	}
	if x >= w-resizeInset {
		e |= EdgeRight
	}
	if y < resizeInset {
		e |= EdgeTop
	}
	if y >= h-resizeInset {
		e |= EdgeBottom
	}
	switch e {
	case EdgeClient, EdgeLeft, EdgeRight, EdgeTop, EdgeBottom,
		EdgeTopLeft, EdgeTopRight, EdgeBottomLeft, EdgeBottomRight:
		return e
	}
	return EdgeNone
}

// parsePoint parses "x,y".
func parsePoint(s string) (x, y int, ok bool) {
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, false
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, false
	}
	y, err = strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}

// chrome applies one frameless chrome action on the window thread.
// Actions the native cannot perform are ignored.
func (s *session) chrome(action string) {
	name, args, _ := strings.Cut(action, ":")
	if name == "close" {
		s.beginClose()
		return
	}
	c, ok := s.native.(Chrome)
	if !ok {
		s.log.Debug("chrome action ignored", zap.String("action", name))
		return
	}
	switch name {
	case "minimize":
		c.Minimize()
	case "maximize":
		c.ToggleMaximize()
	case "drag_window":
		c.StartDrag()
	case "mousedown", "mousemove":
		x, y, ok := parsePoint(args)
		if !ok {
			s.log.Debug("malformed chrome point", zap.String("action", action))
			return
		}
		w, h := s.native.Size()
		e := HitTest(w, h, x, y)
		if name == "mousemove" {
			c.SetCursor(e)
		} else if e.Resizable() {
			c.StartResize(e)
		}
	default:
		s.log.Debug("unknown chrome action", zap.String("action", name))
	}
}
