// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records window activity as Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	createdCnt prometheus.Counter
	openGauge  prometheus.Gauge
	failedCnt  prometheus.Counter
	faultCnt   prometheus.Counter
	eventCnt   *prometheus.CounterVec
	commandCnt *prometheus.CounterVec
}

// NewMetrics creates the window collectors under namespace and registers
// them with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		createdCnt: prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "windows_created_total"}),
		openGauge:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "windows_open"}),
		failedCnt:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "windows_init_failed_total"}),
		faultCnt:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "windows_faulted_total"}),
		eventCnt:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "window_events_total"}, []string{"kind"}),
		commandCnt: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "window_commands_total"}, []string{"op", "result"}),
	}
	reg.MustRegister(m.createdCnt, m.openGauge, m.failedCnt, m.faultCnt, m.eventCnt, m.commandCnt)
	return m
}

func (m *Metrics) created() {
	if m != nil {
		m.createdCnt.Inc()
	}
}

func (m *Metrics) opened() {
	if m != nil {
		m.openGauge.Inc()
	}
}

func (m *Metrics) closed() {
	if m != nil {
		m.openGauge.Dec()
	}
}

func (m *Metrics) initFailed() {
	if m != nil {
		m.failedCnt.Inc()
	}
}

func (m *Metrics) faulted() {
	if m != nil {
		m.faultCnt.Inc()
	}
}

func (m *Metrics) event(k EventKind) {
	if m != nil {
		m.eventCnt.WithLabelValues(k.String()).Inc()
	}
}

func (m *Metrics) command(op string, applied bool) {
	if m == nil {
		return
	}
	result := "applied"
	if !applied {
		result = "skipped"
	}
	m.commandCnt.WithLabelValues(op, result).Inc()
}
