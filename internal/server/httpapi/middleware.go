package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/reddsec/scoreboard/internal/logging"
)

// originGuard rejects browser requests from origins outside the allow list
// and stamps the primary origin on every response, so cached responses never
// echo an arbitrary caller origin. Requests without an Origin header (curl,
// health probes) pass through.
func originGuard(primaryOrigin string, allowed []string, logger logging.Logger) func(http.Handler) http.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		allowedSet[o] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", primaryOrigin)

			// Bare OPTIONS (no preflight headers, so the CORS middleware let
			// it through) finishes here, before the allow-list check.
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			origin := r.Header.Get("Origin")
			if origin != "" {
				if _, ok := allowedSet[origin]; !ok {
					logger.Warn(r.Context(), "rejected origin", "origin", origin, "path", r.URL.Path)
					writeJSON(w, http.StatusForbidden, errorBody{Error: "Forbidden Domain"})
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger tags each request with an id and logs method, path, status,
// and duration once the handler returns.
func requestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info(r.Context(), "request",
				"id", uuid.NewString(),
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}
