package streamlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/c360/bytestream/errors"
	"github.com/c360/bytestream/pkg/retry"
)

// Level represents the severity level of a log entry
type Level string

const (
	// LevelDebug represents debug-level logs
	LevelDebug Level = "DEBUG"
	// LevelInfo represents informational logs
	LevelInfo Level = "INFO"
	// LevelWarn represents warning logs
	LevelWarn Level = "WARN"
	// LevelError represents error logs
	LevelError Level = "ERROR"
)

// Entry represents a structured log entry that can be published to NATS
// for real-time streaming consumers.
type Entry struct {
	Timestamp string `json:"timestamp"` // RFC3339 format
	Level     Level  `json:"level"`
	Component string `json:"component"`
	FlowID    string `json:"flow_id"`
	Message   string `json:"message"`
	Stack     string `json:"stack,omitempty"` // Error details for errors
}

// Logger is the handle passed through pipelines to stage functions. It wraps
// a standard slog.Logger for local logging while optionally publishing
// structured entries to NATS for remote consumption.
//
// A nil *Logger is valid and drops everything, so stages never need to
// nil-check the handle they receive.
type Logger struct {
	component string
	flowID    string
	nc        *nats.Conn
	logger    *slog.Logger
	enabled   bool // whether NATS publishing is enabled
}

// New creates a logger for a component. An empty flowID gets a generated one.
// nc may be nil (no NATS publishing); base may be nil (no local logging).
func New(component, flowID string, nc *nats.Conn, base *slog.Logger) *Logger {
	if flowID == "" {
		flowID = uuid.NewString()
	}
	return &Logger{
		component: component,
		flowID:    flowID,
		nc:        nc,
		logger:    base,
		enabled:   nc != nil,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{}
}

// FlowID returns the flow identifier carried by this logger.
func (cl *Logger) FlowID() string {
	if cl == nil {
		return ""
	}
	return cl.flowID
}

// WithComponent returns a copy of the logger bound to another component name,
// sharing the same flow ID and sinks.
func (cl *Logger) WithComponent(component string) *Logger {
	if cl == nil {
		return nil
	}
	clone := *cl
	clone.component = component
	return &clone
}

// Debug logs a debug-level message
func (cl *Logger) Debug(msg string) {
	cl.DebugContext(context.Background(), msg)
}

// Info logs an info-level message
func (cl *Logger) Info(msg string) {
	cl.InfoContext(context.Background(), msg)
}

// Warn logs a warning-level message
func (cl *Logger) Warn(msg string) {
	cl.WarnContext(context.Background(), msg)
}

// Error logs an error-level message with optional error details
func (cl *Logger) Error(msg string, err error) {
	cl.ErrorContext(context.Background(), msg, err)
}

// DebugContext logs a debug-level message with context
func (cl *Logger) DebugContext(ctx context.Context, msg string) {
	if cl == nil {
		return
	}
	cl.publish(ctx, LevelDebug, msg, "")
	if cl.logger != nil {
		cl.logger.Debug(msg, "component", cl.component)
	}
}

// InfoContext logs an info-level message with context
func (cl *Logger) InfoContext(ctx context.Context, msg string) {
	if cl == nil {
		return
	}
	cl.publish(ctx, LevelInfo, msg, "")
	if cl.logger != nil {
		cl.logger.Info(msg, "component", cl.component)
	}
}

// WarnContext logs a warning-level message with context
func (cl *Logger) WarnContext(ctx context.Context, msg string) {
	if cl == nil {
		return
	}
	cl.publish(ctx, LevelWarn, msg, "")
	if cl.logger != nil {
		cl.logger.Warn(msg, "component", cl.component)
	}
}

// ErrorContext logs an error-level message with optional error details and context
func (cl *Logger) ErrorContext(ctx context.Context, msg string, err error) {
	if cl == nil {
		return
	}
	stack := ""
	if err != nil {
		stack = fmt.Sprintf("%+v", err)
	}
	cl.publish(ctx, LevelError, msg, stack)
	if cl.logger != nil {
		cl.logger.Error(msg, "component", cl.component, "error", err)
	}
}

// publish ships a log entry to NATS. Failures never propagate to the caller;
// the data plane must not depend on the log plane.
func (cl *Logger) publish(ctx context.Context, level Level, message, stack string) {
	if !cl.enabled {
		return
	}

	select {
	case <-ctx.Done():
		return
	default:
	}

	entry := Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Component: cl.component,
		FlowID:    cl.flowID,
		Message:   message,
		Stack:     stack,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		if cl.logger != nil {
			cl.logger.Error("Failed to marshal log entry", "error", err)
		}
		return
	}

	// enabled is only set when nc is non-nil; checked again defensively
	nc := cl.nc
	if nc == nil {
		return
	}

	subject := fmt.Sprintf("logs.%s.%s", cl.flowID, cl.component)
	if err := nc.Publish(subject, data); err != nil {
		if cl.logger != nil {
			cl.logger.Error("Failed to publish log to NATS", "error", err, "subject", subject)
		}
	}
}

// Connect dials a NATS server with startup retry, for callers that want
// streamed logs without wiring their own connection handling.
func Connect(ctx context.Context, url string) (*nats.Conn, error) {
	nc, err := retry.DoWithResult(ctx, retry.Quick(), func() (*nats.Conn, error) {
		return nats.Connect(url)
	})
	if err != nil {
		return nil, errors.WrapTransient(err, "streamlog", "Connect", "NATS connect")
	}
	return nc, nil
}
