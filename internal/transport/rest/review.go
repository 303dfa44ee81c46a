package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
	"github.com/heartmarshall/quizreview-backend/internal/transport/dataloader"
)

type reviewService interface {
	NeedsReview(ctx context.Context, limit int) ([]domain.ReviewQueueItem, error)
	DashboardStats(ctx context.Context, date string) (domain.DashboardSnapshot, error)
}

// ReviewHandler serves the review queue and dashboard.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

// Queue handles GET /review-queue?limit=.
func (h *ReviewHandler) Queue(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.NeedsReview(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.annotate(r.Context(), items))
}

// Dashboard handles GET /dashboard?date=YYYY-MM-DD.
func (h *ReviewHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.DashboardStats(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Date:                 snap.Date,
		UnverifiedCount:      snap.UnverifiedCount,
		PendingCommentsCount: snap.PendingCommentsCount,
		VerifiedToday:        snap.VerifiedToday,
		RejectedToday:        snap.RejectedToday,
		TopReviewItems:       h.annotate(r.Context(), snap.TopReviewItems),
		Degraded:             snap.Degraded,
	})
}

// annotate attaches the latest verification action to each item. Lookup
// failures only drop the annotation.
func (h *ReviewHandler) annotate(ctx context.Context, items []domain.ReviewQueueItem) []reviewItemResponse {
	out := make([]reviewItemResponse, len(items))

	var latest []*domain.VerificationLogEntry
	if loaders := dataloader.FromContext(ctx); loaders != nil && len(items) > 0 {
		ids := make([]string, len(items))
		for i, it := range items {
			ids[i] = it.ContentID
		}
		var err error
		latest, err = loaders.LoadLatest(ctx, ids)
		if err != nil {
			h.log.WarnContext(ctx, "latest action lookup failed", slog.String("error", err.Error()))
			latest = nil
		}
	}

	for i, it := range items {
		var e *domain.VerificationLogEntry
		if latest != nil {
			e = latest[i]
		}
		out[i] = toReviewItem(it, e)
	}
	return out
}
