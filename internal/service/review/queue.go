package review

import (
	"context"
	"fmt"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

// NeedsReview returns unverified items, most recent first, each annotated with
// its unresolved quiz-level comment count. A zero limit means the configured
// default; limits above the maximum are clamped.
func (s *Service) NeedsReview(ctx context.Context, limit int) ([]domain.ReviewQueueItem, error) {
	switch {
	case limit < 0:
		return nil, domain.NewValidationError("limit", "must not be negative")
	case limit == 0:
		limit = s.cfg.QueueDefaultLimit
	case limit > s.cfg.QueueMaxLimit:
		limit = s.cfg.QueueMaxLimit
	}

	items, err := s.content.ListUnverified(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list unverified: %w", err)
	}
	return items, nil
}
