package pipeline

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/c360/bytestream/buffer"
	"github.com/c360/bytestream/metric"
	"github.com/c360/bytestream/streamlog"
)

// Pipeline chains stage functions into a directed sequence of byte
// transformations. Adjacent stages are wired by internal SharedFIFOs: stage
// i writes to a Producer whose buffer is stage i+1's input Consumer.
//
// The pipeline owns its workers. Process joins any workers left from a
// previous run before starting, Wait joins the current run, and SetError
// fast-cancels a run by erroring every internal buffer. Workers are never
// detached; a pipeline going out of scope mid-run must be Wait()ed so no
// goroutine outlives the buffers it touches.
//
// A Pipeline is reusable: each Process call resets the intermediate buffers
// and spawns fresh workers. Calling Process again while a previous run is
// still live is undefined; the initial join only protects against benign
// reruns.
type Pipeline struct {
	mu        sync.Mutex
	stages    []Stage
	producers []buffer.Producer

	wg sync.WaitGroup

	name    string
	metrics *metric.Metrics
}

// New creates an empty pipeline.
func New(options ...Option) *Pipeline {
	opts := applyOptions(options...)
	p := &Pipeline{
		name: opts.name,
	}
	if opts.metricsReg != nil {
		p.metrics = opts.metricsReg.CoreMetrics()
	}
	return p
}

// AddPipe appends a stage. Stages run in the order they were added; adding
// never triggers a run.
func (p *Pipeline) AddPipe(stage Stage) {
	if stage == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages added so far.
func (p *Pipeline) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.stages)
}

// SetError errors every internal buffer of the current run. Stages observe
// unwritable outputs and unreadable inputs, wake from any blocked read, and
// exit promptly. Safe to call concurrently with a running pipeline.
func (p *Pipeline) SetError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, producer := range p.producers {
		producer.SetError()
	}
}

// Wait joins every worker of the most recent run. It returns immediately
// when no run is live.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Process starts (or reruns) the pipeline against the given input and
// returns the Consumer for the final stage's output.
//
// In Async mode it returns as soon as all workers are launched; output can
// be consumed while stages are still running. In Sync mode the last stage
// runs inline in the calling goroutine and every worker is joined before
// returning, so the returned Consumer is already complete. Earlier stages
// run on their own workers in both modes, otherwise stage 0 would have to
// fill an unbounded buffer before stage 1 ever started.
//
// With no stages the input passes through: the returned Consumer shares the
// input's buffer, closed so the caller sees EoF after draining.
func (p *Pipeline) Process(input buffer.Consumer, mode ExecutionMode, log *streamlog.Logger) buffer.Consumer {
	// Join any workers from a previous run before touching shared state.
	p.wg.Wait()

	p.mu.Lock()
	stages := p.stages

	if len(stages) == 0 {
		p.producers = nil
		p.mu.Unlock()
		passthrough := buffer.NewProducerFrom(input)
		passthrough.Close()
		return passthrough.Consumer()
	}

	// Fresh intermediate buffers for this run.
	producers := make([]buffer.Producer, len(stages))
	for i := range producers {
		producers[i], _ = buffer.NewProducer()
	}
	p.producers = producers
	p.mu.Unlock()

	runID := uuid.NewString()
	if log != nil {
		log.Debug(fmt.Sprintf("pipeline %s run %s: %d stages, %s mode", p.name, runID, len(stages), mode))
	}
	if p.metrics != nil {
		p.metrics.RecordPipelineRun(p.name, mode.String())
	}

	for i := range stages {
		stageIn := input
		if i > 0 {
			stageIn = producers[i-1].Consumer()
		}
		stageOut := producers[i]

		if mode == Async || i < len(stages)-1 {
			p.wg.Add(1)
			go func(idx int, stage Stage, in buffer.Consumer, out buffer.Producer) {
				defer p.wg.Done()
				p.runStage(idx, stage, in, out, log)
			}(i, stages[i], stageIn, stageOut)
			continue
		}

		// Sync last stage: run inline, then join the upstream workers so
		// Process returning means the run is complete.
		p.runStage(i, stages[i], stageIn, stageOut, log)
		p.wg.Wait()
	}

	return producers[len(producers)-1].Consumer()
}

// runStage invokes one stage, timing it and converting a panic into an
// errored output so the rest of the pipeline unblocks.
func (p *Pipeline) runStage(idx int, stage Stage, in buffer.Consumer, out buffer.Producer, log *streamlog.Logger) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out.SetError()
			if p.metrics != nil {
				p.metrics.RecordStageError(p.name)
			}
			if log != nil {
				log.Error(fmt.Sprintf("pipeline %s: stage %d panicked", p.name, idx), fmt.Errorf("%v", r))
			}
		}
		if p.metrics != nil {
			p.metrics.RecordStageDuration(p.name, strconv.Itoa(idx), time.Since(start))
		}
	}()

	stage(in, out, log)
}
