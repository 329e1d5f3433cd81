// Package metrics provides driven.RetrievalRecorder implementations.
//
// Recorder publishes Prometheus metrics on its own registry, which the HTTP
// transport serves on /metrics. NopRecorder discards everything and is used
// by the CLI.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driven"
)

const namespace = "clinical_trials"

// Ensure both recorders implement the interface.
var (
	_ driven.RetrievalRecorder = (*Recorder)(nil)
	_ driven.RetrievalRecorder = NopRecorder{}
)

// Recorder counts and times registry attempts.
type Recorder struct {
	registry *prometheus.Registry
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates a recorder with a private registry that also carries
// the Go runtime and process collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_attempts_total",
			Help:      "Registry requests made by the retrieval fallback chain.",
		}, []string{"registry", "state", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "registry_attempt_duration_seconds",
			Help:      "Latency of registry requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"registry"}),
	}

	reg.MustRegister(
		r.attempts,
		r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// RecordAttempt records one registry call.
func (r *Recorder) RecordAttempt(registry, state, outcome string, elapsed time.Duration) {
	r.attempts.WithLabelValues(registry, state, outcome).Inc()
	r.duration.WithLabelValues(registry).Observe(elapsed.Seconds())
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// NopRecorder discards attempts.
type NopRecorder struct{}

// RecordAttempt does nothing.
func (NopRecorder) RecordAttempt(string, string, string, time.Duration) {}
