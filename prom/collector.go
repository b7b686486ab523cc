package prom

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/staticvec"
)

const namespace = "staticvec"

// Collector records region events as Prometheus metrics.
type Collector struct {
	acquires   *prometheus.CounterVec
	releases   *prometheus.CounterVec
	held       *prometheus.HistogramVec
	leaks      *prometheus.CounterVec
	violations *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg leaves the metrics unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		acquires: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acquires_total",
			Help:      "Acquire attempts by result (ok or locked).",
		}, []string{"region", "result"}),
		releases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "releases_total",
			Help:      "Explicit handle releases.",
		}, []string{"region"}),
		held: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "held_seconds",
			Help:      "Time between acquire and release.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"region"}),
		leaks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaks_total",
			Help:      "Handles reclaimed by the garbage collector without Release.",
		}, []string{"region"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "violations_total",
			Help:      "Bounds violations by operation and kind.",
		}, []string{"region", "op", "kind"}),
	}

	if reg != nil {
		reg.MustRegister(c.acquires, c.releases, c.held, c.leaks, c.violations)
	}
	return c
}

// RecordAcquire implements staticvec.MetricsCollector.
func (c *Collector) RecordAcquire(region string, err error) {
	result := "ok"
	if err != nil {
		result = "locked"
	}
	c.acquires.WithLabelValues(region, result).Inc()
}

// RecordRelease implements staticvec.MetricsCollector.
func (c *Collector) RecordRelease(region string, held time.Duration) {
	c.releases.WithLabelValues(region).Inc()
	c.held.WithLabelValues(region).Observe(held.Seconds())
}

// RecordLeak implements staticvec.MetricsCollector.
func (c *Collector) RecordLeak(region string) {
	c.leaks.WithLabelValues(region).Inc()
}

// RecordViolation implements staticvec.MetricsCollector.
func (c *Collector) RecordViolation(region, op string, kind error) {
	c.violations.WithLabelValues(region, op, KindLabel(kind)).Inc()
}

// KindLabel maps a violation kind to a stable label value.
func KindLabel(kind error) string {
	switch {
	case errors.Is(kind, staticvec.ErrFull):
		return "full"
	case errors.Is(kind, staticvec.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(kind, staticvec.ErrInsufficientSpace):
		return "insufficient_space"
	case errors.Is(kind, staticvec.ErrPartialElement):
		return "partial_element"
	case errors.Is(kind, staticvec.ErrReleased):
		return "released"
	default:
		return "other"
	}
}

var _ staticvec.MetricsCollector = (*Collector)(nil)
