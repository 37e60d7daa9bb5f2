package buffer

import (
	"sync"

	"github.com/c360/bytestream/errors"
)

// SharedFIFO is a thread-safe FIFO built on top of FIFO. A mutex guards all
// inner state and a condition variable blocks readers until their predicate
// holds.
//
// Blocking semantics:
//
//   - Read(count > 0) waits until count bytes are available from the current
//     cursor, or until the buffer is closed or errored. On close with fewer
//     than count bytes left it returns everything still available without an
//     error; on error it fails with an InsufficientDataError.
//   - Extract(count > 0) behaves the same against the total stored size. On
//     success it wakes the other waiters, whose predicates depend on the new
//     size and cursor.
//   - Read(0) and Extract(0) never block.
//
// Every mutating operation (Write, Close, SetError, Seek, Clear, Clean,
// Extract) broadcasts to all waiters: any of them can satisfy or permanently
// fail a waiting predicate.
//
// There is no fairness guarantee: which of several blocked consumers wins a
// wakeup race is unspecified.
type SharedFIFO struct {
	mu   sync.Mutex
	cond *sync.Cond
	fifo *FIFO

	stats   *Statistics // always present
	metrics *bufferMetrics

	// released guards the live-buffer gauge decrement: Close and SetError
	// are idempotent, the decrement must not be.
	released bool
}

// NewShared creates an open, empty SharedFIFO. Statistics are always
// collected; Prometheus metrics are optional via WithMetrics. Returns an
// error only when metrics registration fails.
func NewShared(options ...Option) (*SharedFIFO, error) {
	opts := applyOptions(options...)

	var metrics *bufferMetrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newBufferMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "SharedFIFO", "NewShared", "metrics registration")
		}
	}

	s := &SharedFIFO{
		fifo:    NewFIFO(opts.capacity),
		stats:   NewStatistics(),
		metrics: metrics,
	}
	s.cond = sync.NewCond(&s.mu)
	return s, nil
}

// Write appends bytes to the buffer and wakes all waiters. Returns false when
// the buffer is closed or errored, or when data is empty.
func (s *SharedFIFO) Write(data []byte) bool {
	s.mu.Lock()
	ok := s.fifo.Write(data)
	if ok {
		s.stats.Write(len(data))
		s.stats.UpdateSize(int64(s.fifo.Size()))
		if s.metrics != nil {
			s.metrics.recordWrite(len(data), s.fifo.Size(), s.fifo.AvailableBytes())
		}
	}
	s.mu.Unlock()
	s.cond.Broadcast()
	return ok
}

// WriteString is a convenience write from a string.
func (s *SharedFIFO) WriteString(data string) bool {
	return s.Write([]byte(data))
}

// Read performs a non-destructive read of count bytes from the current
// cursor. With count > 0 it blocks until enough bytes are available or the
// buffer becomes closed or errored; a closed buffer with fewer than count
// bytes yields all remaining bytes without an error. With count == 0 it
// returns everything currently available without blocking.
func (s *SharedFIFO) Read(count int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count > 0 {
		s.wait(func() bool {
			return s.fifo.closed || s.fifo.errored || s.fifo.AvailableBytes() >= count
		})
		if !s.fifo.errored && s.fifo.closed && s.fifo.AvailableBytes() < count {
			count = 0 // drain what is left instead of failing the blocked reader
		}
	}

	out, err := s.fifo.Read(count)
	if err == nil {
		s.stats.Read(len(out))
		if s.metrics != nil {
			s.metrics.recordRead(len(out), s.fifo.Size(), s.fifo.AvailableBytes())
		}
	}
	return out, err
}

// Extract performs a destructive read of count bytes from the front of the
// buffer. With count > 0 it blocks until the buffer holds enough bytes or
// becomes closed or errored; a closed buffer with fewer than count bytes
// yields everything stored without an error. With count == 0 it drains
// everything currently stored without blocking. On success all waiters are
// woken so they re-evaluate their predicates against the new size and cursor.
func (s *SharedFIFO) Extract(count int) ([]byte, error) {
	s.mu.Lock()

	if count > 0 {
		s.wait(func() bool {
			return s.fifo.closed || s.fifo.errored || s.fifo.Size() >= count
		})
		if !s.fifo.errored && s.fifo.closed && s.fifo.Size() < count {
			count = 0
		}
	}

	out, err := s.fifo.Extract(count)
	if err == nil {
		s.stats.Extract(len(out))
		s.stats.UpdateSize(int64(s.fifo.Size()))
		if s.metrics != nil {
			s.metrics.recordExtract(len(out), s.fifo.Size(), s.fifo.AvailableBytes())
		}
	}
	s.mu.Unlock()

	if err == nil && len(out) > 0 {
		s.cond.Broadcast()
	}
	return out, err
}

// Seek moves the read cursor and wakes all waiters, whose predicates depend
// on the cursor position.
func (s *SharedFIFO) Seek(offset int64, mode Position) {
	s.mu.Lock()
	s.fifo.Seek(offset, mode)
	s.mu.Unlock()
	s.cond.Broadcast()
}

// Clear empties the storage and wakes all waiters. Lifecycle flags are
// preserved.
func (s *SharedFIFO) Clear() {
	s.mu.Lock()
	s.fifo.Clear()
	s.stats.UpdateSize(0)
	if s.metrics != nil {
		s.metrics.updateGauges(0, 0)
	}
	s.mu.Unlock()
	s.cond.Broadcast()
}

// Clean drops the bytes already consumed by the cursor and wakes all waiters.
func (s *SharedFIFO) Clean() {
	s.mu.Lock()
	s.fifo.Clean()
	s.stats.UpdateSize(int64(s.fifo.Size()))
	if s.metrics != nil {
		s.metrics.updateGauges(s.fifo.Size(), s.fifo.AvailableBytes())
	}
	s.mu.Unlock()
	s.cond.Broadcast()
}

// Close marks the buffer closed for further writes and wakes all waiters.
// Buffered data remains readable until drained. Idempotent.
func (s *SharedFIFO) Close() {
	s.mu.Lock()
	s.fifo.Close()
	released := s.release()
	s.mu.Unlock()
	if released {
		s.metrics.recordClosed()
	}
	s.cond.Broadcast()
}

// SetError marks the buffer erroneous and wakes all waiters. Subsequent
// writes fail and reads fail with an InsufficientDataError. Idempotent.
func (s *SharedFIFO) SetError() {
	s.mu.Lock()
	s.fifo.SetError()
	released := s.release()
	s.mu.Unlock()
	if released {
		s.metrics.recordClosed()
	}
	s.cond.Broadcast()
}

// release reports whether this call ends the buffer's metered lifetime.
// Returns true at most once per buffer, and only when metrics are enabled.
// Caller must hold s.mu.
func (s *SharedFIFO) release() bool {
	if s.metrics == nil || s.released {
		return false
	}
	s.released = true
	return true
}

// Reserve grows storage to at least newCapacity. Optimization hint only.
func (s *SharedFIFO) Reserve(newCapacity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fifo.Reserve(newCapacity)
}

// Size returns the current number of bytes stored.
func (s *SharedFIFO) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fifo.Size()
}

// Capacity returns the number of slots in the backing storage.
func (s *SharedFIFO) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fifo.Capacity()
}

// AvailableBytes returns the count readable from the current cursor without
// blocking.
func (s *SharedFIFO) AvailableBytes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fifo.AvailableBytes()
}

// Empty reports whether the buffer has no data.
func (s *SharedFIFO) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fifo.Empty()
}

// IsClosed reports whether the buffer is closed for further writes.
func (s *SharedFIFO) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fifo.IsClosed()
}

// IsWritable reports whether writes are accepted.
func (s *SharedFIFO) IsWritable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fifo.IsWritable()
}

// IsReadable reports whether reads can succeed.
func (s *SharedFIFO) IsReadable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fifo.IsReadable()
}

// EoF reports the end condition: errored, or closed with nothing left to
// read from the cursor.
func (s *SharedFIFO) EoF() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fifo.EoF()
}

// Stats returns the buffer's activity statistics (always available).
func (s *SharedFIFO) Stats() *Statistics {
	return s.stats
}

// wait blocks on the condition variable until pred holds. The caller must
// hold s.mu; the method returns with it still held.
func (s *SharedFIFO) wait(pred func() bool) {
	for !pred() {
		s.cond.Wait()
	}
}
