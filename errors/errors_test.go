package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	assert.Equal(t, "transient", ErrorTransient.String())
	assert.Equal(t, "invalid", ErrorInvalid.String())
	assert.Equal(t, "fatal", ErrorFatal.String())
	assert.Equal(t, "unknown", ErrorClass(42).String())
}

func TestWrapFormat(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, "SharedFIFO", "Read", "wait")

	assert.Equal(t, "SharedFIFO.Read: wait failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.NoError(t, Wrap(nil, "a", "b", "c"))
}

func TestClassifiedWrappers(t *testing.T) {
	cause := stderrors.New("boom")

	cases := []struct {
		name  string
		wrap  func(error, string, string, string) error
		class ErrorClass
	}{
		{"transient", WrapTransient, ErrorTransient},
		{"invalid", WrapInvalid, ErrorInvalid},
		{"fatal", WrapFatal, ErrorFatal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.wrap(cause, "comp", "op", "action")
			require.Error(t, err)

			var ce *ClassifiedError
			require.True(t, stderrors.As(err, &ce))
			assert.Equal(t, tc.class, ce.Class)
			assert.Equal(t, "comp", ce.Component)
			assert.ErrorIs(t, err, cause)

			assert.NoError(t, tc.wrap(nil, "comp", "op", "action"))
		})
	}
}

func TestClassifyBufferSentinels(t *testing.T) {
	assert.True(t, IsInvalid(ErrInsufficientData))
	assert.True(t, IsInvalid(ErrBufferClosed))
	assert.True(t, IsInvalid(ErrBufferErrored))

	// Wrapped at depth, still matches
	deep := fmt.Errorf("stage 3: %w", fmt.Errorf("read: %w", ErrInsufficientData))
	assert.True(t, stderrors.Is(deep, ErrInsufficientData))
	assert.Equal(t, ErrorInvalid, Classify(deep))
}

func TestClassifyTransient(t *testing.T) {
	assert.True(t, IsTransient(ErrConnectionTimeout))
	assert.True(t, IsTransient(ErrConnectionLost))
	assert.True(t, IsTransient(stderrors.New("network unreachable")))
	assert.Equal(t, ErrorTransient, Classify(stderrors.New("i/o timeout")))
}

func TestClassifyFatal(t *testing.T) {
	assert.True(t, IsFatal(ErrInvalidConfig))
	assert.True(t, IsFatal(ErrMissingConfig))
	assert.True(t, IsFatal(stderrors.New("fatal: out of memory")))
}

func TestClassifyNil(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.False(t, IsFatal(nil))
	assert.False(t, IsInvalid(nil))
	assert.Equal(t, ErrorTransient, Classify(nil))
}

func TestClassifiedErrorUnwrap(t *testing.T) {
	err := WrapInvalid(ErrBufferClosed, "Producer", "Write", "append")

	assert.ErrorIs(t, err, ErrBufferClosed)

	var ce *ClassifiedError
	require.True(t, stderrors.As(err, &ce))
	assert.Contains(t, ce.Error(), "Producer.Write")
}

func TestRetryConfigShouldRetry(t *testing.T) {
	rc := DefaultRetryConfig()

	assert.True(t, rc.ShouldRetry(ErrConnectionTimeout, 0))
	assert.False(t, rc.ShouldRetry(ErrConnectionTimeout, rc.MaxRetries))
	assert.False(t, rc.ShouldRetry(nil, 0))
	assert.False(t, rc.ShouldRetry(ErrInvalidConfig, 0)) // fatal, never retried

	// Restricted retryable set
	rc.RetryableErrors = []error{ErrConnectionLost}
	assert.True(t, rc.ShouldRetry(ErrConnectionLost, 0))
	assert.False(t, rc.ShouldRetry(ErrConnectionTimeout, 0))
}

func TestRetryConfigBackoffDelay(t *testing.T) {
	rc := RetryConfig{
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      1 * time.Second,
		BackoffFactor: 2.0,
	}

	assert.Equal(t, 100*time.Millisecond, rc.BackoffDelay(0))
	assert.Equal(t, 200*time.Millisecond, rc.BackoffDelay(1))
	assert.Equal(t, 400*time.Millisecond, rc.BackoffDelay(2))
	assert.Equal(t, 1*time.Second, rc.BackoffDelay(10)) // capped
}

func TestRetryConfigToRetryConfig(t *testing.T) {
	rc := DefaultRetryConfig()
	cfg := rc.ToRetryConfig()

	assert.Equal(t, rc.MaxRetries+1, cfg.MaxAttempts)
	assert.Equal(t, rc.InitialDelay, cfg.InitialDelay)
	assert.Equal(t, rc.MaxDelay, cfg.MaxDelay)
	assert.True(t, cfg.AddJitter)
}
