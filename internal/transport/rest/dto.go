package rest

import (
	"time"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

type logEntryResponse struct {
	ID        string    `json:"id"`
	Seq       int64     `json:"seq"`
	ContentID string    `json:"content_id"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id"`
	Reason    *string   `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func toLogEntry(e domain.VerificationLogEntry) logEntryResponse {
	return logEntryResponse{
		ID:        e.ID,
		Seq:       e.Seq,
		ContentID: e.ContentID,
		Action:    e.Action.String(),
		ActorID:   e.ActorID,
		Reason:    e.Reason,
		CreatedAt: e.CreatedAt,
	}
}

func toLogEntries(entries []domain.VerificationLogEntry) []logEntryResponse {
	out := make([]logEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = toLogEntry(e)
	}
	return out
}

type commentResponse struct {
	ID          string    `json:"id"`
	Granularity string    `json:"granularity"`
	ParentID    string    `json:"parent_id"`
	AuthorID    string    `json:"author_id"`
	Text        string    `json:"text"`
	Type        string    `json:"type"`
	IsResolved  bool      `json:"is_resolved"`
	CreatedAt   time.Time `json:"created_at"`
}

func toComment(c domain.AuditComment) commentResponse {
	return commentResponse{
		ID:          c.ID,
		Granularity: c.Granularity.String(),
		ParentID:    c.ParentID,
		AuthorID:    c.AuthorID,
		Text:        c.Text,
		Type:        c.Type,
		IsResolved:  c.IsResolved,
		CreatedAt:   c.CreatedAt,
	}
}

type reviewItemResponse struct {
	ContentID              string     `json:"content_id"`
	UnresolvedCommentCount int        `json:"unresolved_comment_count"`
	CreatedAt              time.Time  `json:"created_at"`
	LatestAction           *string    `json:"latest_action"`
	LatestActionAt         *time.Time `json:"latest_action_at,omitempty"`
}

func toReviewItem(item domain.ReviewQueueItem, latest *domain.VerificationLogEntry) reviewItemResponse {
	resp := reviewItemResponse{
		ContentID:              item.ContentID,
		UnresolvedCommentCount: item.UnresolvedCommentCount,
		CreatedAt:              item.CreatedAt,
	}
	if latest != nil {
		action := latest.Action.String()
		at := latest.CreatedAt
		resp.LatestAction = &action
		resp.LatestActionAt = &at
	}
	return resp
}

type dashboardResponse struct {
	Date                 string               `json:"date"`
	UnverifiedCount      int                  `json:"unverified_count"`
	PendingCommentsCount int                  `json:"pending_comments_count"`
	VerifiedToday        int                  `json:"verified_today"`
	RejectedToday        int                  `json:"rejected_today"`
	TopReviewItems       []reviewItemResponse `json:"top_review_items"`
	Degraded             []string             `json:"degraded,omitempty"`
}

type statusResponse struct {
	ContentID  string            `json:"content_id"`
	Verified   bool              `json:"verified"`
	Latest     *logEntryResponse `json:"latest_action"`
	Consistent bool              `json:"consistent"`
}
