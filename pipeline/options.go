package pipeline

import (
	"github.com/c360/bytestream/metric"
)

// Option configures a Pipeline using the functional options pattern.
type Option func(*pipelineOptions)

type pipelineOptions struct {
	name string

	// metricsReg is optional - if provided, run and stage activity is
	// exposed as Prometheus metrics
	metricsReg *metric.MetricsRegistry
}

// WithName labels the pipeline in logs and metrics. Defaults to "pipeline".
func WithName(name string) Option {
	return func(opts *pipelineOptions) {
		if name != "" {
			opts.name = name
		}
	}
}

// WithMetrics enables Prometheus instrumentation of pipeline runs and stage
// durations through the registry's core metrics. A nil registry is ignored.
func WithMetrics(registry *metric.MetricsRegistry) Option {
	return func(opts *pipelineOptions) {
		if registry != nil {
			opts.metricsReg = registry
		}
	}
}

func applyOptions(options ...Option) *pipelineOptions {
	opts := &pipelineOptions{
		name: "pipeline",
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
