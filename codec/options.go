package codec

import (
	"github.com/hupe1980/vecunits"
)

// DefaultMaxFrameSize is the default limit on the decoded payload of a frame.
const DefaultMaxFrameSize = 64 << 20

type options struct {
	codec        Codec
	compression  Compression
	maxFrameSize uint32
	logger       *vecunits.Logger
	metrics      vecunits.MetricsCollector
}

func defaultOptions() options {
	return options{
		codec:        Default,
		compression:  CompressionNone,
		maxFrameSize: DefaultMaxFrameSize,
		logger:       vecunits.NoopLogger(),
		metrics:      vecunits.NoopMetricsCollector{},
	}
}

// Option configures frame encoding and decoding.
type Option func(*options)

// WithCodec configures the codec used to marshal records when encoding.
// Decoding always uses the codec named in the frame header.
//
// If nil is passed, Default is used.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c == nil {
			c = Default
		}
		o.codec = c
	}
}

// WithCompression configures the payload compression used when encoding.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMaxFrameSize limits the uncompressed payload size accepted when
// decoding. Larger frames fail with ErrFrameTooLarge before any buffer is
// allocated. Zero keeps the current limit.
func WithMaxFrameSize(n uint32) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFrameSize = n
		}
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
