package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/quizreview-backend/internal/config"
	"github.com/heartmarshall/quizreview-backend/internal/transport/dataloader"
	"github.com/heartmarshall/quizreview-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (actorID, role string, err error)
}

type requestRecorder interface {
	RecordRequest(method, route string, statusCode int, durationSeconds float64)
}

// RouterDeps collects everything the HTTP surface needs.
type RouterDeps struct {
	Logger       *slog.Logger
	Verification *VerificationHandler
	Comments     *CommentHandler
	Review       *ReviewHandler
	Health       *HealthHandler
	Tokens       tokenValidator
	Logs         dataloader.LogRepo
	Metrics      requestRecorder
	Gatherer     prometheus.Gatherer
	RateLimiter  *middleware.RateLimiter
	CORS         config.CORSConfig
	RateLimit    config.RateLimitConfig
}

// NewRouter builds the HTTP handler. Writes are rate limited per client IP
// and require a bearer token; reads accept anonymous callers. CORS runs ahead
// of Auth so rejected requests still carry cross-origin headers.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
		middleware.Logger(d.Logger),
		middleware.Metrics(d.Metrics),
	))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(dataloader.Middleware(d.Logs))

		r.Get("/review-queue", d.Review.Queue)
		r.Get("/dashboard", d.Review.Dashboard)
		r.Get("/comments", d.Comments.List)
		r.Get("/comments/{granularity}/{commentID}", d.Comments.Get)

		r.Route("/content/{contentID}", func(r chi.Router) {
			r.Get("/history", d.Verification.History)
			r.Get("/status", d.Verification.Status)
			r.Get("/comment-counts", d.Comments.Counts)

			r.Group(func(r chi.Router) {
				r.Use(d.RateLimiter.Limit(d.RateLimit.WritesPerMinute))
				r.Post("/verify", d.Verification.Verify)
				r.Post("/unverify", d.Verification.Unverify)
				r.Post("/reject", d.Verification.Reject)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(d.RateLimiter.Limit(d.RateLimit.WritesPerMinute))
			r.Post("/comments", d.Comments.Add)
			r.Post("/comments/{granularity}/{commentID}/resolve", d.Comments.Resolve)
		})
	})

	return r
}
