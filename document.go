// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import (
	"html"
	"strings"
)

// IPCBinding is the global function platforms expose to page scripts for
// posting messages to the host. Pages call window.ipc.postMessage instead.
const IPCBinding = "__webwin_post"

// bootstrap installs window.ipc.postMessage on top of IPCBinding.
const bootstrap = `window.ipc = window.ipc || {
  postMessage: function (m) {
    if (typeof window.` + IPCBinding + ` === "function") {
      window.` + IPCBinding + `(String(m));
    }
  }
};`

const shell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{title}}</title>
<script>{{bootstrap}}</script>
</head>
<body>
{{body}}
</body>
</html>`

// RenderDocument wraps body in the document shell used for all content.
// The title is escaped; the body is inserted verbatim.
func RenderDocument(title, body string) string {
	r := strings.NewReplacer(
		"{{title}}", html.EscapeString(title),
		"{{bootstrap}}", bootstrap,
		"{{body}}", body,
	)
	return r.Replace(shell)
}

// BootstrapScript returns the script installing window.ipc.postMessage.
// Platforms that support init scripts inject it before page load.
func BootstrapScript() string {
	return bootstrap
}
