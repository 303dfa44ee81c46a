package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

// RejectResult is the outcome of a successful Reject.
type RejectResult struct {
	Entry   domain.VerificationLogEntry
	Comment domain.AuditComment
}

// Verify marks a content item verified and appends a "verified" log entry.
// Verifying an already verified item still appends an entry.
func (s *Service) Verify(ctx context.Context, input TransitionInput) (domain.VerificationLogEntry, error) {
	return s.transition(ctx, domain.ActionVerified, input)
}

// Unverify clears the verified flag and appends an "unverified" log entry.
func (s *Service) Unverify(ctx context.Context, input TransitionInput) (domain.VerificationLogEntry, error) {
	return s.transition(ctx, domain.ActionUnverified, input)
}

// Reject clears the verified flag, appends a "rejected" log entry and
// attaches a quiz-level comment carrying the reason. All three writes commit
// or roll back together.
func (s *Service) Reject(ctx context.Context, input RejectInput) (RejectResult, error) {
	action := domain.ActionRejected

	if err := input.Validate(); err != nil {
		s.metrics.Transition(string(action), outcomeOf(err))
		return RejectResult{}, err
	}
	if err := s.authorize(ctx, input.ActorID); err != nil {
		s.metrics.Transition(string(action), outcomeOf(err))
		return RejectResult{}, err
	}

	var result RejectResult
	err := s.withRetry(ctx, action, func() error {
		return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			reason := input.Reason
			entry, err := s.apply(txCtx, input.ContentID, input.ActorID, action, &reason)
			if err != nil {
				return err
			}

			c, err := s.comments.Create(txCtx, domain.AuditComment{
				ID:          uuid.NewString(),
				Granularity: domain.GranularityQuiz,
				ParentID:    input.ContentID,
				AuthorID:    input.ActorID,
				Text:        input.Reason,
				Type:        domain.CommentTypeRejected,
				CreatedAt:   entry.CreatedAt,
			})
			if err != nil {
				return fmt.Errorf("create rejection comment: %w", err)
			}

			result = RejectResult{Entry: entry, Comment: c}
			return nil
		})
	})
	s.metrics.Transition(string(action), outcomeOf(err))
	if err != nil {
		return RejectResult{}, err
	}

	s.log.InfoContext(ctx, "content rejected",
		slog.String("content_id", input.ContentID),
		slog.String("actor_id", input.ActorID),
		slog.String("comment_id", result.Comment.ID),
		slog.Int64("seq", result.Entry.Seq),
	)
	return result, nil
}

func (s *Service) transition(ctx context.Context, action domain.VerificationAction, input TransitionInput) (domain.VerificationLogEntry, error) {
	if err := input.Validate(); err != nil {
		s.metrics.Transition(string(action), outcomeOf(err))
		return domain.VerificationLogEntry{}, err
	}
	if err := s.authorize(ctx, input.ActorID); err != nil {
		s.metrics.Transition(string(action), outcomeOf(err))
		return domain.VerificationLogEntry{}, err
	}

	var entry domain.VerificationLogEntry
	err := s.withRetry(ctx, action, func() error {
		return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var err error
			entry, err = s.apply(txCtx, input.ContentID, input.ActorID, action, input.Reason)
			return err
		})
	})
	s.metrics.Transition(string(action), outcomeOf(err))
	if err != nil {
		return domain.VerificationLogEntry{}, err
	}

	s.log.InfoContext(ctx, "content verification changed",
		slog.String("content_id", input.ContentID),
		slog.String("action", string(action)),
		slog.String("actor_id", input.ActorID),
		slog.Int64("seq", entry.Seq),
	)
	return entry, nil
}

// apply runs inside a transaction: it locks the content row, writes the flag
// implied by action and appends the log entry. Holding the row lock across
// both writes keeps the flag and the latest entry consistent.
func (s *Service) apply(ctx context.Context, contentID, actorID string, action domain.VerificationAction, reason *string) (domain.VerificationLogEntry, error) {
	if _, err := s.content.GetForUpdate(ctx, contentID); err != nil {
		return domain.VerificationLogEntry{}, fmt.Errorf("lock content: %w", err)
	}

	if err := s.content.SetVerified(ctx, contentID, action.ResultingFlag()); err != nil {
		return domain.VerificationLogEntry{}, fmt.Errorf("set verified: %w", err)
	}

	entry, err := s.logs.Append(ctx, domain.VerificationLogEntry{
		ID:        uuid.NewString(),
		ContentID: contentID,
		Action:    action,
		ActorID:   actorID,
		Reason:    reason,
		CreatedAt: s.clock.Now().UTC(),
	})
	if err != nil {
		return domain.VerificationLogEntry{}, fmt.Errorf("append log entry: %w", err)
	}
	return entry, nil
}

func (s *Service) authorize(ctx context.Context, actorID string) error {
	ok, err := s.identity.CanReview(ctx, actorID)
	if err != nil {
		return fmt.Errorf("check reviewer capability: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "error"
	}
}
