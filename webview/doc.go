// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package webview provides the native [webwin.Platform] backed by
// github.com/webview/webview_go (WebKitGTK, WebKit or WebView2).
//
// The native backend needs cgo and the "webview" build tag:
//
//	go build -tags webview ./cmd/webwin
//
// Without them, the package compiles to a stub whose Init reports
// ErrUnavailable, so every window fails with EventInitFailed.
//
// Native builds register the platform as webwin.DefaultPlatform on import.
// On darwin the platform runs on the main thread, so programs must wrap
// their body in webwin.Main.
//
// Frameless, transparent and attention requests are not supported by the
// backend and are ignored.
package webview

import "errors"

// Name is the platform name reported in logs and metrics.
const Name = "webview"

// ErrUnavailable reports a binary built without the native backend.
var ErrUnavailable = errors.New("webview: native backend not built (requires cgo and -tags webview)")
