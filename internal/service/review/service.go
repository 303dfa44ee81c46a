package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentRepo interface {
	CountUnverified(ctx context.Context) (int, error)
	ListUnverified(ctx context.Context, limit int) ([]domain.ReviewQueueItem, error)
}

type commentRepo interface {
	CountUnresolved(ctx context.Context, g domain.Granularity) (int, error)
}

type logRepo interface {
	CountByActionBetween(ctx context.Context, action domain.VerificationAction, from, to time.Time) (int, error)
}

type recorder interface {
	Degraded(field string)
}

type noopRecorder struct{}

func (noopRecorder) Degraded(string) {}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds review queue and dashboard parameters.
type Config struct {
	Location          *time.Location
	QueueDefaultLimit int
	QueueMaxLimit     int
	TopItems          int
	QueryTimeout      time.Duration
}

// Service implements the review queue and the dashboard aggregator.
type Service struct {
	content  contentRepo
	comments commentRepo
	logs     logRepo
	metrics  recorder
	clock    clockwork.Clock
	cfg      Config
	log      *slog.Logger
}

// NewService creates a new review service. A nil metrics recorder disables
// degraded-field counting.
func NewService(log *slog.Logger, content contentRepo, comments commentRepo, logs logRepo, metrics recorder, clock clockwork.Clock, cfg Config) *Service {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		content:  content,
		comments: comments,
		logs:     logs,
		metrics:  metrics,
		clock:    clock,
		cfg:      cfg,
		log:      log.With("service", "review"),
	}
}
