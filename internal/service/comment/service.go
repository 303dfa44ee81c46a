package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type commentRepo interface {
	Create(ctx context.Context, c domain.AuditComment) (domain.AuditComment, error)
	ListByParent(ctx context.Context, g domain.Granularity, parentID string, filter domain.CommentFilter) ([]domain.AuditComment, error)
	Resolve(ctx context.Context, g domain.Granularity, id string) error
	GetByID(ctx context.Context, g domain.Granularity, id string) (domain.AuditComment, error)
	CountUnresolvedByParent(ctx context.Context, g domain.Granularity, parentID string) (int, error)
}

type contentRepo interface {
	GetByID(ctx context.Context, id string) (domain.ContentItem, error)
}

type identityProvider interface {
	CanReview(ctx context.Context, actorID string) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the audit comment store operations.
type Service struct {
	comments commentRepo
	content  contentRepo
	identity identityProvider
	clock    clockwork.Clock
	log      *slog.Logger
}

// NewService creates a new comment service.
func NewService(log *slog.Logger, comments commentRepo, content contentRepo, identity identityProvider, clock clockwork.Clock) *Service {
	return &Service{
		comments: comments,
		content:  content,
		identity: identity,
		clock:    clock,
		log:      log.With("service", "comment"),
	}
}

// AddComment creates an unresolved comment. Quiz-level parents must exist in
// the content store; question and answer ids are not checked.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (domain.AuditComment, error) {
	if err := input.Validate(); err != nil {
		return domain.AuditComment{}, err
	}
	if err := s.authorize(ctx, input.ActorID); err != nil {
		return domain.AuditComment{}, err
	}

	if input.Granularity == domain.GranularityQuiz {
		if _, err := s.content.GetByID(ctx, input.ParentID); err != nil {
			return domain.AuditComment{}, fmt.Errorf("get content: %w", err)
		}
	}

	c, err := s.comments.Create(ctx, domain.AuditComment{
		ID:          uuid.NewString(),
		Granularity: input.Granularity,
		ParentID:    input.ParentID,
		AuthorID:    input.ActorID,
		Text:        input.Text,
		Type:        input.Type,
		CreatedAt:   s.clock.Now().UTC(),
	})
	if err != nil {
		return domain.AuditComment{}, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("comment_id", c.ID),
		slog.String("granularity", string(c.Granularity)),
		slog.String("parent_id", c.ParentID),
		slog.String("actor_id", c.AuthorID),
	)
	return c, nil
}

// ListComments returns comments for a parent, newest first.
func (s *Service) ListComments(ctx context.Context, input ListCommentsInput) ([]domain.AuditComment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByParent(ctx, input.Granularity, input.ParentID, domain.CommentFilter{UnresolvedOnly: input.UnresolvedOnly})
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// GetComment returns a single comment.
func (s *Service) GetComment(ctx context.Context, g domain.Granularity, id string) (domain.AuditComment, error) {
	var errs []domain.FieldError
	if id == "" {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	if !g.IsValid() {
		errs = append(errs, domain.FieldError{Field: "granularity", Message: granularityMessage})
	}
	if len(errs) > 0 {
		return domain.AuditComment{}, domain.NewValidationErrors(errs)
	}

	c, err := s.comments.GetByID(ctx, g, id)
	if err != nil {
		return domain.AuditComment{}, fmt.Errorf("get comment: %w", err)
	}
	return c, nil
}

// ResolveComment marks a comment resolved. Resolving twice is not an error.
func (s *Service) ResolveComment(ctx context.Context, input ResolveCommentInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if err := s.authorize(ctx, input.ActorID); err != nil {
		return err
	}

	if err := s.comments.Resolve(ctx, input.Granularity, input.CommentID); err != nil {
		return fmt.Errorf("resolve comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment resolved",
		slog.String("comment_id", input.CommentID),
		slog.String("granularity", string(input.Granularity)),
		slog.String("actor_id", input.ActorID),
	)
	return nil
}

// UnresolvedCount returns the number of unresolved quiz-level comments on a
// content item.
func (s *Service) UnresolvedCount(ctx context.Context, contentID string) (int, error) {
	if contentID == "" {
		return 0, domain.NewValidationError("content_id", "required")
	}
	if _, err := s.content.GetByID(ctx, contentID); err != nil {
		return 0, fmt.Errorf("get content: %w", err)
	}

	n, err := s.comments.CountUnresolvedByParent(ctx, domain.GranularityQuiz, contentID)
	if err != nil {
		return 0, fmt.Errorf("count unresolved comments: %w", err)
	}
	return n, nil
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
