package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/quizreview-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (actorID, role string, err error)
}

// Auth resolves the bearer token into an actor stored on the context.
// Requests without a token pass through anonymously; handlers decide whether
// an actor is required. A malformed or expired token is rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			actorID, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := ctxutil.WithActor(r.Context(), actorID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
