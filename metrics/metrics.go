// Package metrics provides Prometheus instrumentation for kernel error
// construction. Install it as the errors recorder at process start-up:
//
//	m := metrics.NewMetrics(prometheus.DefaultRegisterer)
//	errors.SetRecorder(m)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/auth-platform/libs/go/kernel/errors"
)

// Metrics holds Prometheus metrics for kernel operations. A nil
// *Metrics is a valid no-op receiver.
type Metrics struct {
	errorsTotal *prometheus.CounterVec
}

// NewMetrics creates kernel metrics and registers them with registry.
// A nil registry skips registration, which suits tests that only need
// the counters.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kernel_domain_errors_total",
				Help: "Total number of domain errors constructed, by error code",
			},
			[]string{"error_code"},
		),
	}

	if registry != nil {
		registry.MustRegister(m.errorsTotal)
	}

	return m
}

// RecordError implements errors.Recorder, counting one construction for
// the given code.
func (m *Metrics) RecordError(code errors.ErrorCode) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(string(code)).Inc()
}

// ErrorsTotal returns the error counter vector.
func (m *Metrics) ErrorsTotal() *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.errorsTotal
}

var _ errors.Recorder = (*Metrics)(nil)
