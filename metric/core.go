package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all library-level metrics (not caller-specific)
type Metrics struct {
	// Buffer metrics
	BuffersActive prometheus.Gauge
	BytesWritten  *prometheus.CounterVec
	BytesRead     *prometheus.CounterVec

	// Pipeline metrics
	PipelineRuns  *prometheus.CounterVec
	StageErrors   *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with all library metrics
func NewMetrics() *Metrics {
	return &Metrics{
		BuffersActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "bytestream",
				Subsystem: "buffer",
				Name:      "active",
				Help:      "Number of live shared buffers with metrics enabled",
			},
		),

		BytesWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bytestream",
				Subsystem: "buffer",
				Name:      "bytes_written_total",
				Help:      "Total bytes written into buffers",
			},
			[]string{"component"},
		),

		BytesRead: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bytestream",
				Subsystem: "buffer",
				Name:      "bytes_read_total",
				Help:      "Total bytes read or extracted from buffers",
			},
			[]string{"component"},
		),

		PipelineRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bytestream",
				Subsystem: "pipeline",
				Name:      "runs_total",
				Help:      "Total pipeline Process invocations",
			},
			[]string{"pipeline", "mode"},
		),

		StageErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bytestream",
				Subsystem: "pipeline",
				Name:      "stage_errors_total",
				Help:      "Total stage failures (panics recovered and converted to errors)",
			},
			[]string{"pipeline"},
		),

		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "bytestream",
				Subsystem: "pipeline",
				Name:      "stage_duration_seconds",
				Help:      "Wall-clock duration of each pipeline stage",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pipeline", "stage"},
		),
	}
}

// RecordBufferOpened increments the live buffer gauge
func (c *Metrics) RecordBufferOpened() {
	c.BuffersActive.Inc()
}

// RecordBufferClosed decrements the live buffer gauge
func (c *Metrics) RecordBufferClosed() {
	c.BuffersActive.Dec()
}

// RecordBytesWritten adds to the written byte counter
func (c *Metrics) RecordBytesWritten(component string, n int) {
	c.BytesWritten.WithLabelValues(component).Add(float64(n))
}

// RecordBytesRead adds to the read byte counter
func (c *Metrics) RecordBytesRead(component string, n int) {
	c.BytesRead.WithLabelValues(component).Add(float64(n))
}

// RecordPipelineRun increments the pipeline run counter
func (c *Metrics) RecordPipelineRun(pipeline, mode string) {
	c.PipelineRuns.WithLabelValues(pipeline, mode).Inc()
}

// RecordStageError increments the stage error counter
func (c *Metrics) RecordStageError(pipeline string) {
	c.StageErrors.WithLabelValues(pipeline).Inc()
}

// RecordStageDuration records a stage's wall-clock duration
func (c *Metrics) RecordStageDuration(pipeline, stage string, duration time.Duration) {
	c.StageDuration.WithLabelValues(pipeline, stage).Observe(duration.Seconds())
}
