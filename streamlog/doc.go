// Package streamlog provides the logger handle carried through bytestream pipelines.
//
// # Overview
//
// Pipeline stages receive a *Logger alongside their input Consumer and output
// Producer. The handle wraps log/slog for local structured logging and can
// additionally publish JSON entries to NATS on logs.<flow_id>.<component>,
// letting remote consumers tail a pipeline run live.
//
// The data plane never depends on the log plane: a nil *Logger is safe to
// call, marshal or publish failures are swallowed (after a local error line),
// and stages therefore never need to nil-check the handle.
//
// # Usage
//
//	base := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	nc, err := streamlog.Connect(ctx, nats.DefaultURL) // optional
//	log := streamlog.New("ingest", "", nc, base)       // empty flow ID gets generated
//
//	out := pipe.Process(in, pipeline.Async, log)
//
// Use Nop() (or nil) when no logging is wanted.
package streamlog
