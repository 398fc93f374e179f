// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !cgo || !webview

package webview

import (
	"code.hybscloud.com/webwin"
)

// Platform is the stub platform of builds without the native backend.
type Platform struct{}

// New returns the stub platform.
func New() *Platform {
	return &Platform{}
}

func (p *Platform) Name() string { return Name }

func (p *Platform) Capabilities() webwin.Capability {
	return webwin.CapAnyThread | webwin.CapDetach
}

// Init always fails with ErrUnavailable.
func (p *Platform) Init() error {
	return ErrUnavailable
}

func (p *Platform) Open(webwin.WindowConfig, webwin.Sink) (webwin.Native, error) {
	return nil, ErrUnavailable
}
