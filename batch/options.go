package batch

import (
	"runtime"

	"github.com/hupe1980/vecunits"
)

// DefaultChunkSize is the number of expressions materialized per task.
const DefaultChunkSize = 1024

type options struct {
	workers   int
	chunkSize int
	logger    *vecunits.Logger
	metrics   vecunits.MetricsCollector
}

func defaultOptions() options {
	return options{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		logger:    vecunits.NoopLogger(),
		metrics:   vecunits.NoopMetricsCollector{},
	}
}

// Option configures batch evaluation.
type Option func(*options)

// WithWorkers limits the number of concurrent workers.
// Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithChunkSize sets how many expressions one worker materializes per task.
// Values <= 0 select DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *vecunits.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = vecunits.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures the metrics collector.
func WithMetrics(m vecunits.MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = vecunits.NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
