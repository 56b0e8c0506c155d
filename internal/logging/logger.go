// Package logging carries a *log.Logger through context.Context for the tools
package logging

import (
	"context"
	"io"
	"log"
	"os"
	"sync"
)

type contextKey string

const loggerKey = contextKey("logger")

const defaultPrefix = "Kopeck: "

var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

// DefaultLogger is the stderr logger used when a context holds none
func DefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = NewLogger(defaultPrefix, log.Lmsgprefix)
	})

	return defaultLogger
}

// NewLogger returns a logger writing to stderr
func NewLogger(prefix string, flag int) *log.Logger {
	return NewLoggerTo(os.Stderr, prefix, flag)
}

// NewLoggerTo returns a logger writing to w
func NewLoggerTo(w io.Writer, prefix string, flag int) *log.Logger {
	return log.New(w, prefix, flag)
}

// Discard returns ctx with a logger that drops every message
func Discard(ctx context.Context) context.Context {
	return WithLogger(ctx, NewLoggerTo(io.Discard, "", 0))
}

// WithLogger returns a copy of ctx carrying logger
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx or DefaultLogger
func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}

	return DefaultLogger()
}
