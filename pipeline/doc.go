// Package pipeline composes byte transformations into multi-stage flows over
// shared FIFO buffers.
//
// # Overview
//
// A Pipeline holds an ordered list of Stage functions. Process wires them
// together with one thread-safe buffer per stage: an external Consumer feeds
// stage 0, each stage's Producer backs the next stage's Consumer, and the
// caller reads the final stage's Consumer. Stages synchronize implicitly by
// blocking on their input buffers; no explicit coordination is needed inside
// a stage.
//
// # Writing Stages
//
// A stage loops until its input reaches EoF, writes derived bytes to its
// output, and always finishes the output:
//
//	pipe.AddPipe(func(in buffer.Consumer, out buffer.Producer, log *streamlog.Logger) {
//		for !in.EoF() {
//			data, err := in.Extract(4096)
//			if err != nil {
//				out.SetError()
//				return
//			}
//			out.Write(bytes.ToUpper(data))
//		}
//		if !in.IsReadable() {
//			out.SetError() // input ended in error: pass it on
//			return
//		}
//		out.Close()
//	})
//
// Close means "done, output is valid"; SetError cancels everything
// downstream (readers fail) and upstream (writers see unwritable outputs and
// exit). Stages report failure only through their output buffer; panics are
// recovered by the worker wrapper and converted to SetError.
//
// # Execution Modes
//
//	out := pipe.Process(in, pipeline.Async, log) // returns immediately
//	out := pipe.Process(in, pipeline.Sync, log)  // returns when the run is done
//
// In both modes every stage except possibly the last runs on its own
// goroutine, so data streams through the chain incrementally. Sync runs the
// last stage in the caller's goroutine and joins the rest before returning.
//
// # Worker Ownership
//
// The pipeline owns its workers: Process joins leftovers from a previous
// run, Wait joins the current one, and nothing is ever detached. Callers
// that drop the returned Consumer mid-run should Wait before discarding the
// Pipeline so no worker outlives the buffers it touches.
//
// # Cancellation
//
// Pipeline.SetError errors every internal buffer of the current run, waking
// all blocked stages. The final Consumer then reports EoF with zero
// available bytes and failed reads.
package pipeline
