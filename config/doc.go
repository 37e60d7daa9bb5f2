// Package config provides YAML configuration for bytestream deployments.
//
// # Overview
//
// One Config struct covers the tunable surface of the library: buffer
// pre-allocation, pipeline naming and execution mode, the streamlog handle
// (level, component, optional NATS URL) and the Prometheus endpoint.
// Missing fields keep their defaults, and every load path validates before
// returning, so a *Config in hand is always usable.
//
// # Usage
//
//	cfg, err := config.Load("bytestream.yaml")
//	if err != nil { ... }
//
//	mode, _ := cfg.Pipeline.ExecutionMode()
//	buf, _ := buffer.NewShared(buffer.WithCapacity(cfg.Buffer.InitialCapacity))
//
// SafeConfig wraps a Config for callers that hot-swap configuration at
// runtime.
package config
