package rcrd

import (
	"log/slog"

	"github.com/hupe1980/rcrd/codec"
)

type options struct {
	codec            codec.Codec
	compression      codec.Compression
	metricsCollector MetricsCollector
	logger           *Logger
	prefix           string
	concurrency      int
	ioLimit          int64
	cacheBytes       int64
	memoryLimit      int64
}

// Option configures Open.
type Option func(*options)

// WithCodec configures the codec used for newly written records.
// Reads always use the codec recorded in each blob.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures payload compression for newly written records.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithPrefix stores every record under prefix. Names passed to the DB and
// returned by List are relative to it.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithConcurrency bounds the number of store calls PutMany and GetMany run
// in parallel. Values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithIOLimit caps blob traffic in bytes per second. 0 disables the limit.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.ioLimit = bytesPerSec
	}
}

// WithCache keeps up to capacity bytes of recently read blobs in memory.
// memoryLimit, if positive, is a hard cap shared by everything the DB caches.
func WithCache(capacity, memoryLimit int64) Option {
	return func(o *options) {
		o.cacheBytes = capacity
		o.memoryLimit = memoryLimit
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rcrd.BasicMetricsCollector{}
//	db, _ := rcrd.Open(store, rcrd.WithMetricsCollector(metrics))
//	// ... use db ...
//	stats := metrics.GetStats()
//	fmt.Printf("Puts: %d, Avg latency: %dns\n", stats.PutCount, stats.PutAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := rcrd.NewJSONLogger(slog.LevelInfo)
//	db, _ := rcrd.Open(store, rcrd.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		compression:      codec.CompressionNone,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		concurrency:      1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}
	return o
}
