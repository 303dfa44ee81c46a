package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type requestRecorder interface {
	RecordRequest(method, route string, statusCode int, durationSeconds float64)
}

// Metrics records request count and latency labelled by the matched chi route
// pattern, so path parameters do not explode label cardinality. A nil recorder
// yields a nil Middleware, which Chain skips.
func Metrics(rec requestRecorder) Middleware {
	if rec == nil {
		return nil
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			rec.RecordRequest(r.Method, route, sw.status, time.Since(start).Seconds())
		})
	}
}
