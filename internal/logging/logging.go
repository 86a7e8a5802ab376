// Package logging provides the structured logger used across the service,
// backed by zerolog, plus trace-ID plumbing for request correlation.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey int

const traceIDKey ctxKey = iota

// Logger wraps a zerolog.Logger with the chaining helpers the services
// use. The zero value is not usable; construct with New or NewDefault.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger writing JSON lines to w at the given level.
// Unknown level strings fall back to info.
func New(w io.Writer, component, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("component", component).
		Logger()
	return &Logger{zl: zl}
}

// NewDefault creates an info-level logger on stderr for the component.
func NewDefault(component string) *Logger {
	return New(os.Stderr, component, "info")
}

// WithField returns a logger with an extra field attached.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// WithError returns a logger with the error attached.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{zl: l.zl.With().Err(err).Logger()}
}

func (l *Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }
func (l *Logger) Info(msg string)  { l.zl.Info().Msg(msg) }
func (l *Logger) Warn(msg string)  { l.zl.Warn().Msg(msg) }
func (l *Logger) Error(msg string) { l.zl.Error().Msg(msg) }

// LogRequest emits the standard access-log line for a completed request,
// including the trace ID when the context carries one.
func (l *Logger) LogRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	evt := l.zl.Info().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", duration)
	if id := TraceIDFromContext(ctx); id != "" {
		evt = evt.Str("trace_id", id)
	}
	evt.Msg("http request")
}

// NewTraceID generates a fresh request trace ID.
func NewTraceID() string {
	return uuid.New().String()
}

// WithTraceID stores the trace ID in the context.
func WithTraceID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, traceIDKey, id)
}

// TraceIDFromContext returns the trace ID or "" if the context has none.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}
