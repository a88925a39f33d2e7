package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const RequestIDHeader = "X-Request-ID"

// Field represents a key-value pair for observability.
type Field struct {
	Key   string
	Value interface{}
}

type ObservabilityContextKey string

const observabilityKey ObservabilityContextKey = "observability_fields"

// WithFields returns a child context carrying the parent's fields plus the
// given ones. The parent is never mutated.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, observabilityKey, merged)
}

func getObservabilityFields(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	if fields, ok := ctx.Value(observabilityKey).([]Field); ok {
		return fields
	}
	return nil
}

func requestID(c *gin.Context) string {
	id := c.Request.Header.Get(RequestIDHeader)
	if id == "" {
		id = "req-" + uuid.NewString()
		c.Request.Header.Set(RequestIDHeader, id)
	}
	c.Writer.Header().Set(RequestIDHeader, id)
	return id
}

// Middleware tags the request context with request fields, recovers panics
// as 500 and records one log line plus request metrics per call. Probe
// endpoints are not logged. m may be nil.
func Middleware(l *Logger, m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithFields(c.Request.Context(),
			Field{"request_id", requestID(c)},
			Field{"path", c.Request.URL.Path},
			Field{"method", c.Request.Method},
			Field{"client_ip", c.ClientIP()},
		)
		if c.Request.URL.RawQuery != "" {
			ctx = WithFields(ctx, Field{"query_params", c.Request.URL.RawQuery})
		}
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(ctx, "recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatus(http.StatusInternalServerError)
			}

			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			latency := time.Since(start)
			m.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), latency)

			if route == "/health" || route == "/metrics" {
				return
			}
			l.Info(WithFields(ctx,
				Field{"route", route},
				Field{"status", c.Writer.Status()},
				Field{"latency_ms", latency.Milliseconds()},
			), "request processed")
		}()
		c.Next()
	}
}

// Logger wraps zap and enriches every entry with the context's fields.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger creates a production JSON logger with stack traces on errors.
func NewLogger() *Logger {
	zapLogger, err := zap.NewProduction(zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		zapLogger = zap.NewNop()
	}
	return &Logger{zapLogger: zapLogger}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

// Named tags every entry with the process name, e.g. "worker".
func (l *Logger) Named(process string) *Logger {
	return &Logger{zapLogger: l.zapLogger.With(zap.String("process", process))}
}

func (l *Logger) loggerFromContext(ctx context.Context) *zap.Logger {
	fields := getObservabilityFields(ctx)
	if len(fields) == 0 {
		return l.zapLogger
	}
	zapFields := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		zapFields[i] = zap.Any(f.Key, f.Value)
	}
	return l.zapLogger.With(zapFields...)
}

func (l *Logger) Info(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Info(msg)
}

func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Error(msg, zap.Error(err))
}

func (l *Logger) Warn(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Warn(msg)
}

// WarnWithError logs a non-fatal anomaly such as a DataIntegrityWarning or
// a failed per-item send.
func (l *Logger) WarnWithError(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Warn(msg, zap.Error(err))
}

func (l *Logger) Debug(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Debug(msg)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Fatal(msg, zap.Error(err))
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}
