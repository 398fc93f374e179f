// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin_test

import (
	"testing"

	"code.hybscloud.com/webwin"
	"code.hybscloud.com/webwin/headless"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// sample returns the value of the series of family name whose labels
// include every pair in labels.
func sample(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
	series:
		for _, m := range mf.GetMetric() {
			for k, v := range labels {
				found := false
				for _, lp := range m.GetLabel() {
					if lp.GetName() == k && lp.GetValue() == v {
						found = true
					}
				}
				if !found {
					continue series
				}
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue()
			}
		}
	}
	return 0
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := webwin.NewMetrics(reg, "test")
	p := headless.New()
	w := open(t, webwin.WindowConfig{}, p, webwin.WithMetrics(m))
	hw := native(t, p)

	if err := w.ReplaceContent("<p>x</p>"); err != nil {
		t.Fatalf("ReplaceContent: %v", err)
	}
	hw.Post("hi")
	next(t, w)
	if got := sample(t, reg, "test_windows_open", nil); got != 1 {
		t.Fatalf("windows_open: got %v, want 1", got)
	}
	if err := w.RequestClose(); err != nil {
		t.Fatalf("RequestClose: %v", err)
	}
	untilTerminal(t, w)
	joined(t, w)

	checks := []struct {
		name   string
		labels map[string]string
		want   float64
	}{
		{"test_windows_created_total", nil, 1},
		{"test_windows_open", nil, 0},
		{"test_window_events_total", map[string]string{"kind": "message"}, 1},
		{"test_window_events_total", map[string]string{"kind": "closed"}, 1},
		{"test_window_commands_total", map[string]string{"op": "replace_html", "result": "applied"}, 1},
		{"test_window_commands_total", map[string]string{"op": "close", "result": "applied"}, 1},
	}
	for _, c := range checks {
		if got := sample(t, reg, c.name, c.labels); got != c.want {
			t.Errorf("%s%v: got %v, want %v", c.name, c.labels, got, c.want)
		}
	}
}

func TestMetricsInitFailed(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := webwin.NewMetrics(reg, "test")
	p := headless.New(headless.WithInitError(errBoom))
	w := open(t, webwin.WindowConfig{}, p, webwin.WithMetrics(m))
	untilTerminal(t, w)
	joined(t, w)
	if got := sample(t, reg, "test_windows_init_failed_total", nil); got != 1 {
		t.Fatalf("windows_init_failed_total: got %v, want 1", got)
	}
	if got := sample(t, reg, "test_window_events_total", map[string]string{"kind": "init_failed"}); got != 1 {
		t.Fatalf("init_failed events: got %v, want 1", got)
	}
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := headless.New(headless.WithRunError(errBoom))
	w := open(t, webwin.WindowConfig{}, p, webwin.WithLogger(zap.New(core)))
	untilTerminal(t, w)
	joined(t, w)

	faults := logs.FilterMessage("native runtime fault").All()
	if len(faults) != 1 {
		t.Fatalf("fault log entries: got %d, want 1", len(faults))
	}
	fields := faults[0].ContextMap()
	if fields["window"] != uint32(w.Serial()) {
		t.Fatalf("window field: got %v, want %d", fields["window"], w.Serial())
	}
	if fields["platform"] != "headless" {
		t.Fatalf("platform field: got %v, want headless", fields["platform"])
	}
}
