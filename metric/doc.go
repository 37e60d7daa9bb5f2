// Package metric provides centralized Prometheus metrics management for bytestream.
//
// # Overview
//
// MetricsRegistry wraps a private prometheus.Registry with duplicate-registration
// guarding and classified errors, and carries the core library metrics
// (buffer byte counters, pipeline run counters, stage duration histograms).
// Go runtime and process collectors are registered automatically.
//
// # Usage
//
//	registry := metric.NewMetricsRegistry()
//
//	buf, err := buffer.NewShared(buffer.WithMetrics(registry, "ingest"))
//	...
//
//	srv := metric.NewServer(9090, "/metrics", registry)
//	if err := srv.Start(); err != nil { ... }
//	defer srv.Stop(ctx)
//
// Component-specific metrics register through the MetricsRegistrar interface;
// a duplicate component/metric pair returns an invalid-class error rather than
// panicking, so optional instrumentation can never take down the data plane.
package metric
