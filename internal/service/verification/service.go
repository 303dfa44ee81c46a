package verification

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

// History pagination bounds.
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentRepo interface {
	GetByID(ctx context.Context, id string) (domain.ContentItem, error)
	GetForUpdate(ctx context.Context, id string) (domain.ContentItem, error)
	SetVerified(ctx context.Context, id string, verified bool) error
}

type logRepo interface {
	Append(ctx context.Context, e domain.VerificationLogEntry) (domain.VerificationLogEntry, error)
	History(ctx context.Context, contentID string, limit, offset int) ([]domain.VerificationLogEntry, error)
	CountByContent(ctx context.Context, contentID string) (int, error)
	Latest(ctx context.Context, contentID string) (*domain.VerificationLogEntry, error)
}

type commentRepo interface {
	Create(ctx context.Context, c domain.AuditComment) (domain.AuditComment, error)
}

type identityProvider interface {
	CanReview(ctx context.Context, actorID string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	Transition(action, outcome string)
	ConflictRetry(action string)
}

type noopRecorder struct{}

func (noopRecorder) Transition(string, string) {}
func (noopRecorder) ConflictRetry(string)      {}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// RetryConfig bounds retries of transactions that failed with ErrConflict.
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Service implements the verification state machine.
type Service struct {
	content  contentRepo
	logs     logRepo
	comments commentRepo
	identity identityProvider
	tx       txManager
	metrics  recorder
	clock    clockwork.Clock
	log      *slog.Logger
	retry    RetryConfig
}

// NewService creates a new verification service.
func NewService(
	log *slog.Logger,
	content contentRepo,
	logs logRepo,
	comments commentRepo,
	identity identityProvider,
	tx txManager,
	metrics recorder,
	clock clockwork.Clock,
	retry RetryConfig,
) *Service {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &Service{
		content:  content,
		logs:     logs,
		comments: comments,
		identity: identity,
		tx:       tx,
		metrics:  metrics,
		clock:    clock,
		log:      log.With("service", "verification"),
		retry:    retry,
	}
}
