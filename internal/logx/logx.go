// Package logx carries a request-scoped logger through the context.
// The request-id middleware stores a logger whose prefix identifies the
// request, and every handler down the chain retrieves that same logger
// instead of holding one of its own.
package logx

import (
	"context"
	"log"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// WithLogger returns a child context carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx. Contexts without one
// (background jobs, tests) fall back to the process default logger, so
// callers never get nil.
func FromContext(ctx context.Context) *log.Logger {
	logger, ok := ctx.Value(loggerKey).(*log.Logger)
	if !ok {
		return log.Default()
	}
	return logger
}
