// Package middleware provides the HTTP middleware of the API: trace ID
// propagation and JWT authentication.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/luachlab/luach-api/internal/api/shared"
	"github.com/luachlab/luach-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and stores a logger
// enriched with it, so all downstream log lines correlate. Apply early
// in the middleware chain.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
