// Package errors provides the error handling framework used across bytestream.
//
// # Error Classification
//
// Every error in the library falls into one of three classes:
//
//   - Transient: temporary failures that may succeed on retry
//   - Invalid: failures caused by invalid input or buffer state
//   - Fatal: unrecoverable failures that should stop processing
//
// Classification drives retry decisions via RetryConfig and integrates with
// the pkg/retry backoff framework through ToRetryConfig().
//
// # Sentinel Errors
//
// The buffer-facing sentinels matter most to callers:
//
//   - ErrInsufficientData: a read or extract asked for more bytes than the
//     buffer can supply. This is the single recoverable failure the core
//     data-plane produces; buffer.InsufficientDataError unwraps to it so
//     errors.Is(err, errors.ErrInsufficientData) works at any wrap depth.
//   - ErrBufferClosed / ErrBufferErrored: lifecycle sentinels used when
//     classifying buffer failures.
//
// # Wrapping Pattern
//
// Errors are wrapped with component and operation context:
//
//	errors.WrapInvalid(err, "SharedFIFO", "Read", "metrics registration")
//
// produces "SharedFIFO.Read: metrics registration failed: <cause>" while
// preserving the chain for errors.Is/As.
package errors
