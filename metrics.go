package staticvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting region metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see package prom) or to keep an event history (see package trace).
//
// Collectors are called on the acquire and release paths. Implementations used
// from interrupt-like contexts must not block.
type MetricsCollector interface {
	// RecordAcquire is called after each acquire attempt.
	// err is nil on success and a *LockedError otherwise.
	RecordAcquire(region string, err error)

	// RecordRelease is called when a handle is released.
	// held is the time between acquire and release.
	RecordRelease(region string, held time.Duration)

	// RecordLeak is called when a handle was reclaimed by the garbage
	// collector without an explicit Release.
	RecordLeak(region string)

	// RecordViolation is called right before a bounds violation panics.
	RecordViolation(region, op string, kind error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAcquire(string, error)           {}
func (NoopMetricsCollector) RecordRelease(string, time.Duration)   {}
func (NoopMetricsCollector) RecordLeak(string)                     {}
func (NoopMetricsCollector) RecordViolation(string, string, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It only uses atomics, so it is safe on every acquire path.
type BasicMetricsCollector struct {
	AcquireCount   atomic.Int64
	LockedCount    atomic.Int64
	ReleaseCount   atomic.Int64
	HeldTotalNanos atomic.Int64
	LeakCount      atomic.Int64
	ViolationCount atomic.Int64
}

// RecordAcquire implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAcquire(_ string, err error) {
	if err != nil {
		b.LockedCount.Add(1)
		return
	}
	b.AcquireCount.Add(1)
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(_ string, held time.Duration) {
	b.ReleaseCount.Add(1)
	b.HeldTotalNanos.Add(held.Nanoseconds())
}

// RecordLeak implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLeak(string) {
	b.LeakCount.Add(1)
}

// RecordViolation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordViolation(string, string, error) {
	b.ViolationCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	releases := b.ReleaseCount.Load()
	var avg int64
	if releases > 0 {
		avg = b.HeldTotalNanos.Load() / releases
	}
	return BasicMetricsStats{
		AcquireCount:   b.AcquireCount.Load(),
		LockedCount:    b.LockedCount.Load(),
		ReleaseCount:   releases,
		AvgHeldNanos:   avg,
		LeakCount:      b.LeakCount.Load(),
		ViolationCount: b.ViolationCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	AcquireCount   int64
	LockedCount    int64
	ReleaseCount   int64
	AvgHeldNanos   int64
	LeakCount      int64
	ViolationCount int64
}

// Tee returns a collector that forwards every call to all given collectors in order.
// Nil collectors are skipped.
func Tee(collectors ...MetricsCollector) MetricsCollector {
	out := make(teeCollector, 0, len(collectors))
	for _, c := range collectors {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

type teeCollector []MetricsCollector

func (t teeCollector) RecordAcquire(region string, err error) {
	for _, c := range t {
		c.RecordAcquire(region, err)
	}
}

func (t teeCollector) RecordRelease(region string, held time.Duration) {
	for _, c := range t {
		c.RecordRelease(region, held)
	}
}

func (t teeCollector) RecordLeak(region string) {
	for _, c := range t {
		c.RecordLeak(region)
	}
}

func (t teeCollector) RecordViolation(region, op string, kind error) {
	for _, c := range t {
		c.RecordViolation(region, op, kind)
	}
}

var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
	_ MetricsCollector = teeCollector(nil)
)
