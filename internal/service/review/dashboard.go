package review

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

// Dashboard field names, as reported in DashboardSnapshot.Degraded.
const (
	FieldUnverifiedCount      = "unverified_count"
	FieldPendingCommentsCount = "pending_comments_count"
	FieldVerifiedToday        = "verified_today"
	FieldRejectedToday        = "rejected_today"
	FieldTopReviewItems       = "top_review_items"
)

var fieldOrder = []string{
	FieldUnverifiedCount,
	FieldPendingCommentsCount,
	FieldVerifiedToday,
	FieldRejectedToday,
	FieldTopReviewItems,
}

// DashboardStats computes the reviewer dashboard for the given day (YYYY-MM-DD
// in the configured timezone; empty means today). Every counter runs as its
// own sub-query. A failing or timed-out sub-query zeroes its field and is
// listed in Degraded; only cancellation of ctx fails the whole call.
func (s *Service) DashboardStats(ctx context.Context, date string) (domain.DashboardSnapshot, error) {
	day, from, to, err := dayWindow(date, s.clock.Now(), s.cfg.Location)
	if err != nil {
		return domain.DashboardSnapshot{}, err
	}

	snap := domain.DashboardSnapshot{Date: day, TopReviewItems: []domain.ReviewQueueItem{}}

	var (
		mu     sync.Mutex
		failed = make(map[string]bool)
	)

	run := func(g *errgroup.Group, field string, fn func(ctx context.Context) error) {
		g.Go(func() error {
			qctx, cancel := s.queryContext(ctx)
			defer cancel()

			if err := fn(qctx); err != nil {
				mu.Lock()
				failed[field] = true
				mu.Unlock()
				s.metrics.Degraded(field)
				s.log.WarnContext(ctx, "dashboard field degraded",
					slog.String("field", field),
					slog.String("error", err.Error()),
				)
			}
			return nil
		})
	}

	var g errgroup.Group

	run(&g, FieldUnverifiedCount, func(ctx context.Context) error {
		n, err := s.content.CountUnverified(ctx)
		snap.UnverifiedCount = n
		return err
	})
	run(&g, FieldPendingCommentsCount, func(ctx context.Context) error {
		n, err := s.comments.CountUnresolved(ctx, domain.GranularityQuiz)
		snap.PendingCommentsCount = n
		return err
	})
	run(&g, FieldVerifiedToday, func(ctx context.Context) error {
		n, err := s.logs.CountByActionBetween(ctx, domain.ActionVerified, from, to)
		snap.VerifiedToday = n
		return err
	})
	run(&g, FieldRejectedToday, func(ctx context.Context) error {
		n, err := s.logs.CountByActionBetween(ctx, domain.ActionRejected, from, to)
		snap.RejectedToday = n
		return err
	})
	run(&g, FieldTopReviewItems, func(ctx context.Context) error {
		items, err := s.NeedsReview(ctx, s.cfg.TopItems)
		if err == nil {
			snap.TopReviewItems = items
		}
		return err
	})

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return domain.DashboardSnapshot{}, err
	}

	for _, field := range fieldOrder {
		if failed[field] {
			snap.Degraded = append(snap.Degraded, field)
			zeroField(&snap, field)
		}
	}

	s.log.DebugContext(ctx, "dashboard computed",
		slog.String("date", day),
		slog.Int("unverified", snap.UnverifiedCount),
		slog.Int("pending_comments", snap.PendingCommentsCount),
		slog.Int("degraded", len(snap.Degraded)),
	)

	return snap, nil
}

func (s *Service) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.QueryTimeout)
}

func zeroField(snap *domain.DashboardSnapshot, field string) {
	switch field {
	case FieldUnverifiedCount:
		snap.UnverifiedCount = 0
	case FieldPendingCommentsCount:
		snap.PendingCommentsCount = 0
	case FieldVerifiedToday:
		snap.VerifiedToday = 0
	case FieldRejectedToday:
		snap.RejectedToday = 0
	case FieldTopReviewItems:
		snap.TopReviewItems = []domain.ReviewQueueItem{}
	}
}
