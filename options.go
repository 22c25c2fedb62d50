package meshkit

import (
	"log/slog"

	"github.com/hupe1980/meshkit/blobstore"
	"github.com/hupe1980/meshkit/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	store            blobstore.Store
	workers          int
	limits           resource.Config
}

// Option configures a Kit.
type Option func(*options)

// WithMetricsCollector sets the metrics sink. Nil restores the no-op collector.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger sets the logger. Nil restores the default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NewTextLogger(slog.LevelInfo)
		}
		o.logger = l
	}
}

// WithStore sets the blob store used by the table methods.
func WithStore(store blobstore.Store) Option {
	return func(o *options) { o.store = store }
}

// WithWorkers sets the goroutines per pairwise computation.
// Values <= 0 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithMaxConcurrentJobs caps how many pairwise computations run at once.
// Further calls block until a slot frees up.
func WithMaxConcurrentJobs(n int) Option {
	return func(o *options) { o.limits.MaxConcurrentJobs = int64(n) }
}

// WithMemoryLimit caps the scratch memory of pair-distance buffers. A call
// whose buffer alone exceeds the cap fails with ErrInvalidArgument.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) { o.limits.MemoryLimitBytes = bytes }
}

// WithIOLimit throttles table reads and writes to bytesPerSec.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) { o.limits.IOLimitBytesPerSec = bytesPerSec }
}

func defaultOptions() options {
	return options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		limits: resource.Config{
			MaxConcurrentJobs: 4,
		},
	}
}
