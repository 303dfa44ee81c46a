package verification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

// HistoryResult is one page of a content item's verification log.
type HistoryResult struct {
	Entries []domain.VerificationLogEntry
	Total   int
}

// History returns log entries for a content item, newest first.
func (s *Service) History(ctx context.Context, input HistoryInput) (HistoryResult, error) {
	if err := input.Validate(); err != nil {
		return HistoryResult{}, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	if _, err := s.content.GetByID(ctx, input.ContentID); err != nil {
		return HistoryResult{}, fmt.Errorf("get content: %w", err)
	}

	entries, err := s.logs.History(ctx, input.ContentID, limit, input.Offset)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("load history: %w", err)
	}

	total, err := s.logs.CountByContent(ctx, input.ContentID)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("count history: %w", err)
	}

	return HistoryResult{Entries: entries, Total: total}, nil
}

// Status returns the current flag together with the latest log entry.
// An inconsistent pair is reported, not repaired.
func (s *Service) Status(ctx context.Context, contentID string) (domain.VerificationStatus, error) {
	if contentID == "" {
		return domain.VerificationStatus{}, domain.NewValidationError("content_id", "required")
	}

	item, err := s.content.GetByID(ctx, contentID)
	if err != nil {
		return domain.VerificationStatus{}, fmt.Errorf("get content: %w", err)
	}

	latest, err := s.logs.Latest(ctx, contentID)
	if err != nil {
		return domain.VerificationStatus{}, fmt.Errorf("latest log entry: %w", err)
	}

	status := domain.VerificationStatus{
		ContentID: item.ID,
		Verified:  item.Verified,
		Latest:    latest,
	}
	if !status.Consistent() {
		s.log.ErrorContext(ctx, "verification flag disagrees with log",
			slog.String("content_id", contentID),
			slog.Bool("verified", item.Verified),
		)
	}
	return status, nil
}
