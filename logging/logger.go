// Package logging provides zerolog-backed structured logging with
// sensitive-field redaction and a bridge for kernel domain errors.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/auth-platform/libs/go/kernel/errors"
)

// Logger wraps zerolog for structured JSON logging.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger creates a new structured logger writing to stdout.
func NewLogger(level string) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	zl := zerolog.New(os.Stdout).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Caller().
		Logger()

	return &Logger{zl: zl}
}

// NewLoggerWithWriter creates a logger with a custom writer (for testing).
func NewLoggerWithWriter(w io.Writer, level string) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	zl := zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl}
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// WithComponent returns a logger with a component name field.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		zl: l.zl.With().Str("component", component).Logger(),
	}
}

// WithField returns a logger carrying an extra field. Sensitive keys
// and PII-looking string values are redacted.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{
		zl: l.zl.With().Interface(key, RedactSensitive(key, value)).Logger(),
	}
}

// WithFields returns a logger carrying extra fields, redacted the same
// way as WithField.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, RedactSensitive(k, v))
	}
	return &Logger{zl: ctx.Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, err error) {
	l.zl.Error().Err(err).Msg(msg)
}

// DomainErr logs a kernel domain error with its code, metadata and
// cause as structured fields. Metadata values go through the same
// redaction as WithField. Stack text is attached only when the logger
// runs at debug level. Non-domain errors fall back to Error.
func (l *Logger) DomainErr(msg string, err error) {
	domainErr, ok := errors.AsDomain(err)
	if !ok {
		l.Error(msg, err)
		return
	}

	event := l.zl.Error().
		Str("error_code", string(domainErr.Code())).
		Str("error_message", domainErr.Message())

	if metadata := domainErr.Metadata(); len(metadata) > 0 {
		dict := zerolog.Dict()
		for k, v := range metadata {
			dict = dict.Interface(k, RedactSensitive(k, v))
		}
		event = event.Dict("metadata", dict)
	}
	if cause := domainErr.Cause(); cause != nil {
		event = event.Str("cause", cause.Error())
	}
	if l.zl.GetLevel() <= zerolog.DebugLevel && domainErr.Stack() != "" {
		event = event.Str("stack", domainErr.Stack())
	}

	event.Msg(msg)
}
