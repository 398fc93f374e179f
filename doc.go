// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package webwin bridges a polling host to a native webview window whose
// event loop runs on its own locked OS thread.
//
// The host never touches the native window. Every window is a pair of
// single-producer single-consumer queues: commands flow from the host to
// the window thread, events flow back. The window thread drains the command
// queue on each loop tick and is the only owner of the native object.
//
// # Architecture
//
//   - Transport: unbounded SPSC queues built from bounded [code.hybscloud.com/lfq] ring segments.
//     Producers never block; consumers return [code.hybscloud.com/iox.ErrWouldBlock] when empty.
//   - Session: one worker thread per window, states Initializing, Running, Closing, Terminated.
//     Pending commands are applied as one [code.hybscloud.com/kont] effect program per tick.
//   - Lifecycle: a [Controller] per window tracks liveness and joins the worker.
//     [Main] and [Wait] gate process exit on windows created with [JoinWait].
//   - Platform: [Platform] and [Native] describe the native toolkit. See the
//     headless and webview subpackages.
//
// # Operations
//
//   - Host side: [Create], [Window.TryRead], [Window.ReplaceContent], [Window.RequestClose], [Window.IsRunning].
//   - Blocking: [Window.Next] waits with adaptive backoff; [Window.Shutdown] joins the worker.
//   - Extras: [Window.SetAlert], [Window.RequestSize], [Window.SetTitle], [Window.Eval].
//
// # Errors
//
// Misuse is reported synchronously: [ErrInvalidConfig], [ErrUnsupported],
// [ErrMainThread], [ErrChannelClosed]. Failures on the window thread never
// propagate as panics; they arrive as terminal events carrying [ErrNativeInit]
// or [ErrNativeFault].
//
// # Example
//
//	func main() {
//		webwin.Main(func() {
//			w, err := webwin.Create(webwin.WindowConfig{
//				Title: "hello",
//				HTML:  `<button onclick="ipc.postMessage('hi')">hi</button>`,
//			}, webwin.WithPlatform(webview.New()))
//			if err != nil {
//				log.Fatal(err)
//			}
//			for {
//				ev, err := w.Next(context.Background())
//				if err != nil || ev.Kind == webwin.EventClosed {
//					return
//				}
//				fmt.Println(ev.Text)
//			}
//		})
//	}
package webwin
