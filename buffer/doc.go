// Package buffer provides byte-oriented FIFO buffers with a movable
// non-destructive read cursor, a thread-safe shared variant with blocking
// reads, and producer/consumer capability handles.
//
// # Overview
//
// Three layers build on each other:
//
//   - FIFO: a single-goroutine ring buffer over bytes with grow-on-demand,
//     destructive (Extract) and non-destructive (Read) consumption, a
//     seekable cursor and monotonic lifecycle flags.
//   - SharedFIFO: the same abstraction behind a mutex and condition variable,
//     with blocking Read/Extract and waiter wakeup on every mutation.
//   - Producer / Consumer: copyable capability handles exposing disjoint
//     subsets of the SharedFIFO surface. Producers write, close and error;
//     consumers read, extract and seek. Consumers exist only through
//     Producer.Consumer, which keeps both halves on the same buffer.
//
// # Quick Start
//
//	prod, _ := buffer.NewProducer()
//	cons := prod.Consumer()
//
//	go func() {
//		prod.WriteString("hello world")
//		prod.Close()
//	}()
//
//	data, err := cons.Read(11) // blocks until the write lands
//
// # Read vs Extract
//
// Read never modifies storage: it returns bytes starting at the shared
// cursor and advances the cursor, so the same bytes can be revisited with
// Seek. Extract removes bytes from the front of storage regardless of the
// cursor, pulling the cursor back so it keeps naming the same logical unread
// byte. A count of zero means "everything available right now" for both.
//
// # Lifecycle
//
// Close stops writes but leaves buffered data readable until drained; a
// blocked reader waiting for more bytes than will ever arrive wakes and
// receives what is left without an error. SetError stops both directions:
// writers see false, blocked and future readers receive an
// InsufficientDataError. Both flags are monotonic; Clear wipes storage but
// never resurrects a closed or errored buffer.
//
// # Observability
//
// Every SharedFIFO collects Statistics (atomic counters, no configuration).
// Prometheus export is opt-in:
//
//	buf, err := buffer.NewShared(
//		buffer.WithCapacity(4096),
//		buffer.WithMetrics(registry, "ingest"),
//	)
//
// # Concurrency
//
// All SharedFIFO, Producer and Consumer operations are safe for concurrent
// use. Bytes written by a single producer are delivered in order to a single
// consumer; with several producers or consumers on one buffer only the
// aggregate is defined, not the interleaving, and no fairness between
// blocked consumers is guaranteed.
package buffer
