package blobseek

import (
	"errors"
	"io"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    bytesRead   prometheus.Counter
//	    readLatency prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRead(n int, duration time.Duration, err error) {
//	    p.bytesRead.Add(float64(n))
//	    p.readLatency.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordRead is called after each non-empty Read.
	// n is the number of bytes copied, err is io.EOF at end of handle.
	RecordRead(n int, duration time.Duration, err error)

	// RecordSeek is called after each seek, successful or not.
	RecordSeek(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRead(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSeek(time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// It is safe to share between Files.
type BasicMetricsCollector struct {
	ReadCount      atomic.Int64
	ReadErrors     atomic.Int64
	ReadEOFs       atomic.Int64
	ReadBytes      atomic.Int64
	ReadTotalNanos atomic.Int64
	SeekCount      atomic.Int64
	SeekErrors     atomic.Int64
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(n int, duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadBytes.Add(int64(n))
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		b.ReadEOFs.Add(1)
	default:
		b.ReadErrors.Add(1)
	}
}

// RecordSeek implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSeek(duration time.Duration, err error) {
	b.SeekCount.Add(1)
	if err != nil {
		b.SeekErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ReadCount:    b.ReadCount.Load(),
		ReadErrors:   b.ReadErrors.Load(),
		ReadEOFs:     b.ReadEOFs.Load(),
		ReadBytes:    b.ReadBytes.Load(),
		ReadAvgNanos: b.getAvgReadNanos(),
		SeekCount:    b.SeekCount.Load(),
		SeekErrors:   b.SeekErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgReadNanos() int64 {
	count := b.ReadCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ReadCount    int64
	ReadErrors   int64
	ReadEOFs     int64
	ReadBytes    int64
	ReadAvgNanos int64
	SeekCount    int64
	SeekErrors   int64
}
