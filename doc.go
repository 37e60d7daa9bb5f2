// Package bytestream provides byte-oriented streaming data-plane primitives:
// growable FIFO buffers with non-destructive read cursors, thread-safe
// producer/consumer channels, and composable multi-stage pipelines.
//
// # Architecture
//
// The library is organized in dependency order, leaves first:
//
//   - buffer: FIFO (single-goroutine byte container), SharedFIFO
//     (mutex + condition variable, blocking reads), and the Producer and
//     Consumer capability handles over it.
//   - pipeline: ordered stage functions wired together by internal
//     SharedFIFOs, executed concurrently or inline with owned workers.
//   - streamlog: the slog-based logger handle stages receive, with optional
//     NATS publishing for live log streaming.
//   - errors: classified errors (transient/invalid/fatal), sentinels and
//     wrapping helpers shared across the library.
//   - metric: Prometheus registry, core library metrics and the /metrics
//     HTTP server.
//   - config: YAML configuration for buffer, pipeline, logging and metrics
//     tuning.
//
// # Data Flow
//
// A Producer writes bytes into a SharedFIFO; Consumers derived from that
// Producer read or extract them, blocking until data arrives or the channel
// is closed or errored. A Pipeline chains N stages so that stage i's output
// buffer is stage i+1's input, with an external Consumer feeding stage 0 and
// the caller draining the final stage:
//
//	pipe := pipeline.New(pipeline.WithName("transform"))
//	pipe.AddPipe(upper)
//	pipe.AddPipe(frame)
//
//	prod, _ := buffer.NewProducer()
//	prod.WriteString("payload")
//	prod.Close()
//
//	out := pipe.Process(prod.Consumer(), pipeline.Sync, streamlog.Nop())
//	result, err := out.Extract(0) // Sync: the run is complete, so this is all of it
//
// # Scope
//
// The library carries no persistence, no message framing and no flow
// control: writers never block, storage grows, and backpressure is limited
// to closing or erroring a channel.
package bytestream
