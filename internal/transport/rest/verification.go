package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
	"github.com/heartmarshall/quizreview-backend/internal/service/verification"
)

type verificationService interface {
	Verify(ctx context.Context, input verification.TransitionInput) (domain.VerificationLogEntry, error)
	Unverify(ctx context.Context, input verification.TransitionInput) (domain.VerificationLogEntry, error)
	Reject(ctx context.Context, input verification.RejectInput) (verification.RejectResult, error)
	History(ctx context.Context, input verification.HistoryInput) (verification.HistoryResult, error)
	Status(ctx context.Context, contentID string) (domain.VerificationStatus, error)
}

// VerificationHandler serves the state transition and ledger endpoints.
type VerificationHandler struct {
	svc verificationService
	log *slog.Logger
}

// NewVerificationHandler creates a VerificationHandler.
func NewVerificationHandler(svc verificationService, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{svc: svc, log: logger.With("handler", "verification")}
}

type transitionRequest struct {
	Reason *string `json:"reason"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type rejectResponse struct {
	Entry   logEntryResponse `json:"entry"`
	Comment commentResponse  `json:"comment"`
}

type historyResponse struct {
	Entries []logEntryResponse `json:"entries"`
	Total   int                `json:"total"`
}

// Verify handles POST /content/{contentID}/verify.
func (h *VerificationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Verify)
}

// Unverify handles POST /content/{contentID}/unverify.
func (h *VerificationHandler) Unverify(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Unverify)
}

func (h *VerificationHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, verification.TransitionInput) (domain.VerificationLogEntry, error),
) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := op(r.Context(), verification.TransitionInput{
		ContentID: chi.URLParam(r, "contentID"),
		ActorID:   actorID,
		Reason:    req.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLogEntry(entry))
}

// Reject handles POST /content/{contentID}/reject.
func (h *VerificationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req rejectRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Reject(r.Context(), verification.RejectInput{
		ContentID: chi.URLParam(r, "contentID"),
		ActorID:   actorID,
		Reason:    req.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rejectResponse{
		Entry:   toLogEntry(res.Entry),
		Comment: toComment(res.Comment),
	})
}

// History handles GET /content/{contentID}/history?limit=&offset=.
func (h *VerificationHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.History(r.Context(), verification.HistoryInput{
		ContentID: chi.URLParam(r, "contentID"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{Entries: toLogEntries(res.Entries), Total: res.Total})
}

// Status handles GET /content/{contentID}/status.
func (h *VerificationHandler) Status(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context(), chi.URLParam(r, "contentID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := statusResponse{ContentID: st.ContentID, Verified: st.Verified, Consistent: st.Consistent()}
	if st.Latest != nil {
		e := toLogEntry(*st.Latest)
		resp.Latest = &e
	}
	writeJSON(w, http.StatusOK, resp)
}
