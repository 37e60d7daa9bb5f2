package buffer

import (
	"github.com/c360/bytestream/metric"
)

// Option configures a SharedFIFO using the functional options pattern.
type Option func(*bufferOptions)

// bufferOptions holds internal configuration for SharedFIFO instances.
// Statistics are ALWAYS collected; Prometheus metrics are the optional layer.
type bufferOptions struct {
	capacity int

	// metricsReg is optional - if provided, buffer activity is also exposed
	// as Prometheus metrics
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is used as the component label for Prometheus metrics
	metricsPrefix string
}

// WithCapacity pre-allocates storage for the buffer. The value is remembered
// and restored by Clear. Zero (the default) allocates lazily on first write.
func WithCapacity(capacity int) Option {
	return func(opts *bufferOptions) {
		if capacity > 0 {
			opts.capacity = capacity
		}
	}
}

// WithMetrics enables Prometheus metrics export for buffer activity.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics(registry *metric.MetricsRegistry, prefix string) Option {
	return func(opts *bufferOptions) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// applyOptions applies functional options to create the final configuration.
func applyOptions(options ...Option) *bufferOptions {
	opts := &bufferOptions{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
