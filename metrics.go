package vecunits

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordEvaluate is called after each batch materialization.
	// count is the number of expressions, err is nil if successful.
	RecordEvaluate(count int, duration time.Duration, err error)

	// RecordEncode is called after each record frame is encoded.
	RecordEncode(records, bytes int, duration time.Duration, err error)

	// RecordDecode is called after each record frame is decoded.
	RecordDecode(records, bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEvaluate(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordEncode(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	EvaluateCount      atomic.Int64
	EvaluateItems      atomic.Int64
	EvaluateErrors     atomic.Int64
	EvaluateTotalNanos atomic.Int64
	EncodeCount        atomic.Int64
	EncodeRecords      atomic.Int64
	EncodeBytes        atomic.Int64
	EncodeErrors       atomic.Int64
	DecodeCount        atomic.Int64
	DecodeRecords      atomic.Int64
	DecodeBytes        atomic.Int64
	DecodeErrors       atomic.Int64
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(count int, duration time.Duration, err error) {
	b.EvaluateCount.Add(1)
	b.EvaluateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EvaluateErrors.Add(1)
		return
	}
	b.EvaluateItems.Add(int64(count))
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(records, bytes int, _ time.Duration, err error) {
	b.EncodeCount.Add(1)
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodeRecords.Add(int64(records))
	b.EncodeBytes.Add(int64(bytes))
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(records, bytes int, _ time.Duration, err error) {
	b.DecodeCount.Add(1)
	if err != nil {
		b.DecodeErrors.Add(1)
		return
	}
	b.DecodeRecords.Add(int64(records))
	b.DecodeBytes.Add(int64(bytes))
}

// Stats is a point-in-time copy of BasicMetricsCollector counters.
type Stats struct {
	EvaluateCount      int64
	EvaluateItems      int64
	EvaluateErrors     int64
	AvgEvaluateLatency time.Duration
	EncodeCount        int64
	EncodeRecords      int64
	EncodeBytes        int64
	EncodeErrors       int64
	DecodeCount        int64
	DecodeRecords      int64
	DecodeBytes        int64
	DecodeErrors       int64
}

// Stats returns a snapshot of the collected counters.
func (b *BasicMetricsCollector) Stats() Stats {
	s := Stats{
		EvaluateCount:  b.EvaluateCount.Load(),
		EvaluateItems:  b.EvaluateItems.Load(),
		EvaluateErrors: b.EvaluateErrors.Load(),
		EncodeCount:    b.EncodeCount.Load(),
		EncodeRecords:  b.EncodeRecords.Load(),
		EncodeBytes:    b.EncodeBytes.Load(),
		EncodeErrors:   b.EncodeErrors.Load(),
		DecodeCount:    b.DecodeCount.Load(),
		DecodeRecords:  b.DecodeRecords.Load(),
		DecodeBytes:    b.DecodeBytes.Load(),
		DecodeErrors:   b.DecodeErrors.Load(),
	}
	if s.EvaluateCount > 0 {
		s.AvgEvaluateLatency = time.Duration(b.EvaluateTotalNanos.Load() / s.EvaluateCount)
	}
	return s
}
