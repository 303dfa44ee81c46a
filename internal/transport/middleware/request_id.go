package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizreview-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request correlation id in both directions.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDBytes = 128

// RequestID propagates the caller's X-Request-Id, or generates one when the
// header is missing or oversized, and echoes it on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDBytes {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
