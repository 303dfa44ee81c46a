package verification

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

// withRetry runs op and retries it while it fails with ErrConflict, up to
// RetryConfig.MaxRetries extra attempts with jittered exponential backoff.
// Other errors and ctx cancellation stop immediately.
func (s *Service) withRetry(ctx context.Context, action domain.VerificationAction, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retry.InitialBackoff
	b.MaxInterval = s.retry.MaxBackoff
	b.MaxElapsedTime = 0
	b.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(s.retry.MaxRetries, 0))), ctx)

	return backoff.RetryNotify(func() error {
		err := op()
		if err != nil && !domain.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		s.metrics.ConflictRetry(string(action))
		s.log.WarnContext(ctx, "verification conflict, retrying",
			slog.String("action", string(action)),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	})
}
