package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
	"github.com/heartmarshall/quizreview-backend/internal/service/comment"
)

type commentService interface {
	AddComment(ctx context.Context, input comment.AddCommentInput) (domain.AuditComment, error)
	ListComments(ctx context.Context, input comment.ListCommentsInput) ([]domain.AuditComment, error)
	ResolveComment(ctx context.Context, input comment.ResolveCommentInput) error
	GetComment(ctx context.Context, g domain.Granularity, id string) (domain.AuditComment, error)
	UnresolvedCount(ctx context.Context, contentID string) (int, error)
}

// CommentHandler serves the audit comment endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type addCommentRequest struct {
	ParentID    string `json:"parent_id"`
	Granularity string `json:"granularity"`
	Text        string `json:"text"`
	Type        string `json:"type"`
}

// Add handles POST /comments.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.AddComment(r.Context(), comment.AddCommentInput{
		ParentID:    req.ParentID,
		Granularity: domain.Granularity(req.Granularity),
		ActorID:     actorID,
		Text:        req.Text,
		Type:        req.Type,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toComment(c))
}

// List handles GET /comments?parent_id=&granularity=&unresolved_only=.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	unresolvedOnly, err := queryBool(r, "unresolved_only")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q := r.URL.Query()
	comments, err := h.svc.ListComments(r.Context(), comment.ListCommentsInput{
		ParentID:       q.Get("parent_id"),
		Granularity:    domain.Granularity(q.Get("granularity")),
		UnresolvedOnly: unresolvedOnly,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]commentResponse, len(comments))
	for i, c := range comments {
		out[i] = toComment(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /comments/{granularity}/{commentID}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetComment(r.Context(),
		domain.Granularity(chi.URLParam(r, "granularity")),
		chi.URLParam(r, "commentID"),
	)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toComment(c))
}

// Resolve handles POST /comments/{granularity}/{commentID}/resolve.
func (h *CommentHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	err := h.svc.ResolveComment(r.Context(), comment.ResolveCommentInput{
		CommentID:   chi.URLParam(r, "commentID"),
		Granularity: domain.Granularity(chi.URLParam(r, "granularity")),
		ActorID:     actorID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Counts handles GET /content/{contentID}/comment-counts.
func (h *CommentHandler) Counts(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentID")

	n, err := h.svc.UnresolvedCount(r.Context(), contentID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"content_id":       contentID,
		"unresolved_count": n,
	})
}
