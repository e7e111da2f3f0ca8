// Package shared holds the request/response plumbing used by every API
// handler: JSON encoding, validation, and request-scoped context keys.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// ContextKey is the key type for request-scoped context values.
type ContextKey string

const (
	// UserIDContextKey is the context key for the authenticated user ID.
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey is the context key for the request trace ID.
	TraceIDKey ContextKey = "traceID"

	// traceIDBytes is the number of random bytes in a trace ID.
	traceIDBytes = 16
)

// SetTraceID returns a context carrying a freshly generated trace ID.
func SetTraceID(ctx context.Context) context.Context {
	buf := make([]byte, traceIDBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand is documented never to fail on supported platforms;
		// an empty trace ID is still safe.
		return ctx
	}
	return context.WithValue(ctx, TraceIDKey, hex.EncodeToString(buf))
}

// GetTraceID returns the trace ID stored in ctx, or "" when absent.
func GetTraceID(ctx context.Context) string {
	if id, ok := ctx.Value(TraceIDKey).(string); ok {
		return id
	}
	return ""
}
