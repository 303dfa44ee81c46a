package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/quizreview-backend/internal/adapter/identity"
	"github.com/heartmarshall/quizreview-backend/internal/adapter/postgres"
	commentrepo "github.com/heartmarshall/quizreview-backend/internal/adapter/postgres/comment"
	"github.com/heartmarshall/quizreview-backend/internal/adapter/postgres/content"
	"github.com/heartmarshall/quizreview-backend/internal/adapter/postgres/reviewer"
	"github.com/heartmarshall/quizreview-backend/internal/adapter/postgres/verificationlog"
	"github.com/heartmarshall/quizreview-backend/internal/auth"
	"github.com/heartmarshall/quizreview-backend/internal/config"
	"github.com/heartmarshall/quizreview-backend/internal/metrics"
	"github.com/heartmarshall/quizreview-backend/internal/service/comment"
	"github.com/heartmarshall/quizreview-backend/internal/service/review"
	"github.com/heartmarshall/quizreview-backend/internal/service/verification"
	"github.com/heartmarshall/quizreview-backend/internal/transport/middleware"
	"github.com/heartmarshall/quizreview-backend/internal/transport/rest"
)

// Database is what the wiring needs from the connection pool.
// *pgxpool.Pool satisfies it.
type Database interface {
	postgres.Querier
	postgres.Beginner
	Ping(ctx context.Context) error
}

// Server is the wired HTTP surface plus the resources it owns.
type Server struct {
	Handler http.Handler
	limiter *middleware.RateLimiter
}

// Close stops background workers started by NewServer.
func (s *Server) Close() {
	s.limiter.Stop()
}

// NewServer wires repositories, services and transport on top of db.
func NewServer(cfg *config.Config, logger *slog.Logger, db Database, clock clockwork.Clock, reg *prometheus.Registry) (*Server, error) {
	m, err := metrics.New(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	contentRepo := content.New(db)
	logRepo := verificationlog.New(db)
	commentRepo := commentrepo.New(db)
	reviewerRepo := reviewer.New(db)

	identities := identity.NewProvider(reviewerRepo, cfg.Review.IdentityCacheTTL)
	txm := postgres.NewTxManager(db, cfg.Database.LockTimeout)

	verificationSvc := verification.NewService(
		logger, contentRepo, logRepo, commentRepo, identities, txm, m, clock,
		verification.RetryConfig{
			MaxRetries:     cfg.Review.ConflictMaxRetries,
			InitialBackoff: cfg.Review.ConflictInitialBackoff,
			MaxBackoff:     cfg.Review.ConflictMaxBackoff,
		},
	)
	commentSvc := comment.NewService(logger, commentRepo, contentRepo, identities, clock)
	reviewSvc := review.NewService(logger, contentRepo, commentRepo, logRepo, m, clock, review.Config{
		Location:          cfg.Review.Location,
		QueueDefaultLimit: cfg.Review.QueueDefaultLimit,
		QueueMaxLimit:     cfg.Review.QueueMaxLimit,
		TopItems:          cfg.Review.DashboardTopItems,
		QueryTimeout:      cfg.Review.DashboardQueryTimeout,
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:       logger,
		Verification: rest.NewVerificationHandler(verificationSvc, logger),
		Comments:     rest.NewCommentHandler(commentSvc, logger),
		Review:       rest.NewReviewHandler(reviewSvc, logger),
		Health:       rest.NewHealthHandler(db, BuildVersion()),
		Tokens:       auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		Logs:         logRepo,
		Metrics:      m,
		Gatherer:     reg,
		RateLimiter:  limiter,
		CORS:         cfg.CORS,
		RateLimit:    cfg.RateLimit,
	})

	return &Server{Handler: handler, limiter: limiter}, nil
}

// Run connects to the database, serves HTTP until ctx is cancelled, then
// shuts down gracefully within the configured timeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Review.Timezone),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv, err := NewServer(cfg, logger, pool, clockwork.NewRealClock(), reg)
	if err != nil {
		return err
	}
	defer srv.Close()

	httpSrv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      srv.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}
