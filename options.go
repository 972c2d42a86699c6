package clusterkit

import (
	"log/slog"

	"github.com/hupe1980/clusterkit/artifact"
	"github.com/hupe1980/clusterkit/codec"
	"github.com/hupe1980/clusterkit/kmeans"
	"github.com/hupe1980/clusterkit/registry"
)

const (
	// DefaultConcurrency bounds the number of fits running in parallel
	// during a sweep.
	DefaultConcurrency = 4

	// DefaultRestarts is the number of independently seeded fits per K
	// during a sweep. The best fit by WCSS wins.
	DefaultRestarts = 6
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	codec            codec.Codec
	store            artifact.Store
	compression      artifact.Compression
	registry         registry.Registry
	dataset          string
	kmeansOptions    []kmeans.Option
	concurrency      int
	restarts         int
	seed             int64
}

// Option configures an Analyzer.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := clusterkit.NewJSONLogger(slog.LevelInfo)
//	a := clusterkit.New(clusterkit.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &clusterkit.BasicMetricsCollector{}
//	a := clusterkit.New(clusterkit.WithMetricsCollector(metrics))
//	// ... run analyses ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RunCount, stats.RunAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithCodec configures the codec used for encoding saved analyses.
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

// WithArtifactStore configures where SaveAnalysis and LoadAnalysis persist
// encoded analyses. Without a store, both return ErrNoArtifactStore.
func WithArtifactStore(store artifact.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithCompression sets the compression applied to saved analyses.
// The default is artifact.CompressionNone.
func WithCompression(c artifact.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithRegistry configures a run registry. When set, every successful Run is
// recorded with its quality metrics.
func WithRegistry(r registry.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithDatasetName names the dataset in logs, run records, and artifact keys.
func WithDatasetName(name string) Option {
	return func(o *options) {
		o.dataset = name
	}
}

// WithKMeansOptions passes fit options through to the kmeans engine, for
// example kmeans.WithMetric or kmeans.WithMaxIterations.
//
// Initialization options are honored by Run; Sweep chooses its own
// initialization per restart.
func WithKMeansOptions(opts ...kmeans.Option) Option {
	return func(o *options) {
		o.kmeansOptions = opts
	}
}

// WithConcurrency bounds the number of fits running in parallel during a
// sweep. Values < 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.concurrency = n
		}
	}
}

// WithRestarts sets the number of independently seeded fits per K during a
// sweep. Values < 1 are ignored.
func WithRestarts(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.restarts = n
		}
	}
}

// WithSeed seeds sweep initialization, making sweeps reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		codec:            codec.Default,
		compression:      artifact.CompressionNone,
		dataset:          "dataset",
		concurrency:      DefaultConcurrency,
		restarts:         DefaultRestarts,
		seed:             1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
