// backend/src/handlers/middleware.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/PSGMeena/FinTech/src/logger"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// RequestIDMiddleware tags every request with a UUID, echoes it in the
// X-Request-ID response header and logs method, path, and duration.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))

		logger.L.Info("Request handled",
			"requestID", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}

// GetRequestIDFromContext returns the request ID set by RequestIDMiddleware.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey).(string)
	return id, ok
}
