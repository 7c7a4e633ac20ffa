// Package snsctx carries per-call transport options in a context.
package snsctx

import (
	"context"
	"log/slog"
)

type ctxKey int

const verboseKey ctxKey = iota

// SetVerbose enables tracing of every bus transaction made with the returned context.
func SetVerbose(ctx context.Context, value bool) context.Context {
	return context.WithValue(ctx, verboseKey, value)
}

func IsVerbose(ctx context.Context) bool {
	v, _ := ctx.Value(verboseKey).(bool)
	return v
}

// Trace logs a bus transaction at debug level when ctx is verbose.
func Trace(ctx context.Context, msg string, args ...any) {
	if IsVerbose(ctx) {
		slog.DebugContext(ctx, msg, args...)
	}
}
