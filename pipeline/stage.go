package pipeline

import (
	"github.com/c360/bytestream/buffer"
	"github.com/c360/bytestream/streamlog"
)

// Stage is a pipeline transformation. It reads from in until in.EoF(),
// writes derived bytes to out, and finishes by closing out (or calling
// out.SetError on failure). Stages must not panic; a panic escaping a stage
// is recovered by the worker wrapper and converted to SetError on out.
type Stage func(in buffer.Consumer, out buffer.Producer, log *streamlog.Logger)

// ExecutionMode selects how Process schedules stage workers.
type ExecutionMode int

const (
	// Sync runs the last stage inline in the calling goroutine and joins
	// every worker before Process returns: when Process comes back, the run
	// is complete. Earlier stages still run concurrently so data can flow.
	Sync ExecutionMode = iota

	// Async runs every stage on its own goroutine; Process returns as soon
	// as the workers are launched and output can be consumed as it appears.
	Async
)

// String returns a human-readable representation of the execution mode.
func (m ExecutionMode) String() string {
	switch m {
	case Sync:
		return "sync"
	case Async:
		return "async"
	default:
		return "unknown"
	}
}
