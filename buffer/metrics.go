package buffer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/bytestream/metric"
)

// bufferMetrics holds Prometheus metrics for one SharedFIFO.
type bufferMetrics struct {
	component string
	core      *metric.Metrics

	// Counter metrics
	writes   prometheus.Counter
	reads    prometheus.Counter
	extracts prometheus.Counter

	// Gauge metrics - updated on Write, Read, Extract, Clear and Clean
	// (not on Seek, Close or SetError)
	size      prometheus.Gauge
	available prometheus.Gauge
}

// newBufferMetrics creates and registers buffer metrics with the provided registry.
func newBufferMetrics(registry *metric.MetricsRegistry, prefix string) (*bufferMetrics, error) {
	m := &bufferMetrics{
		component: prefix,
		core:      registry.CoreMetrics(),
		writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bytestream",
			Subsystem:   "buffer",
			Name:        "writes_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of buffer write operations",
		}),
		reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bytestream",
			Subsystem:   "buffer",
			Name:        "reads_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of buffer read operations",
		}),
		extracts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "bytestream",
			Subsystem:   "buffer",
			Name:        "extracts_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of buffer extract operations",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "bytestream",
			Subsystem:   "buffer",
			Name:        "size",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of bytes in the buffer",
		}),
		available: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "bytestream",
			Subsystem:   "buffer",
			Name:        "available_bytes",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Bytes readable from the current cursor",
		}),
	}

	if err := registry.RegisterCounter(prefix, "buffer_writes", m.writes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_reads", m.reads); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_extracts", m.extracts); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_available_bytes", m.available); err != nil {
		return nil, err
	}

	m.core.RecordBufferOpened()

	return m, nil
}

// recordClosed ends the buffer's metered lifetime on the live-buffer gauge.
// The caller guarantees at-most-once semantics per buffer.
func (m *bufferMetrics) recordClosed() {
	m.core.RecordBufferClosed()
}

// recordWrite increments the write counters and updates gauges.
func (m *bufferMetrics) recordWrite(n, size, available int) {
	m.writes.Inc()
	m.core.RecordBytesWritten(m.component, n)
	m.updateGauges(size, available)
}

// recordRead increments the read counters and updates gauges.
func (m *bufferMetrics) recordRead(n, size, available int) {
	m.reads.Inc()
	m.core.RecordBytesRead(m.component, n)
	m.updateGauges(size, available)
}

// recordExtract increments the extract counters and updates gauges.
func (m *bufferMetrics) recordExtract(n, size, available int) {
	m.extracts.Inc()
	m.core.RecordBytesRead(m.component, n)
	m.updateGauges(size, available)
}

// updateGauges sets the size and availability gauges.
func (m *bufferMetrics) updateGauges(size, available int) {
	m.size.Set(float64(size))
	m.available.Set(float64(available))
}
