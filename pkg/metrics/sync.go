package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SaverMetrics records the behavior of the debounced persistence savers.
type SaverMetrics struct {
	duration  *prometheus.HistogramVec
	success   *prometheus.CounterVec
	failure   *prometheus.CounterVec
	collapsed *prometheus.CounterVec
}

// NewSaverMetrics registers saver metrics on the provided registerer.
func NewSaverMetrics(reg prometheus.Registerer) *SaverMetrics {
	if reg == nil {
		return &SaverMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "saver_write_duration_seconds",
		Help:    "Duration of persistence writes in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"saver"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saver_write_success",
		Help: "Successful persistence writes.",
	}, []string{"saver"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saver_write_failure",
		Help: "Failed (swallowed) persistence writes.",
	}, []string{"saver"})
	collapsed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saver_debounce_collapsed",
		Help: "Mutations collapsed into an already pending debounce window.",
	}, []string{"saver"})
	reg.MustRegister(duration, success, failure, collapsed)
	return &SaverMetrics{
		duration:  duration,
		success:   success,
		failure:   failure,
		collapsed: collapsed,
	}
}

// ObserveDuration records the duration for the named saver.
func (s *SaverMetrics) ObserveDuration(saver string, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	s.duration.WithLabelValues(normalizeLabel(saver)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named saver.
func (s *SaverMetrics) IncSuccess(saver string) {
	if s == nil || s.success == nil {
		return
	}
	s.success.WithLabelValues(normalizeLabel(saver)).Inc()
}

// IncFailure increments the failure counter for the named saver.
func (s *SaverMetrics) IncFailure(saver string) {
	if s == nil || s.failure == nil {
		return
	}
	s.failure.WithLabelValues(normalizeLabel(saver)).Inc()
}

// IncCollapsed increments the debounce-collapse counter for the named saver.
func (s *SaverMetrics) IncCollapsed(saver string) {
	if s == nil || s.collapsed == nil {
		return
	}
	s.collapsed.WithLabelValues(normalizeLabel(saver)).Inc()
}

func normalizeLabel(saver string) string {
	if saver == "" {
		return "unknown"
	}
	return saver
}
