package comment

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

const (
	maxTextLength = 4000
	maxTypeLength = 50
	maxIDLength   = 255
)

const granularityMessage = "must be quiz, question or answer"

// AddCommentInput holds the parameters for AddComment.
type AddCommentInput struct {
	ParentID    string
	Granularity domain.Granularity
	ActorID     string
	Text        string
	Type        string
}

// Validate checks all fields and collects all errors. Type defaults to "note".
func (i *AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.ParentID == "" {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "required"})
	} else if len(i.ParentID) > maxIDLength {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "too long"})
	}
	if !i.Granularity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "granularity", Message: granularityMessage})
	}

	i.Text = strings.TrimSpace(i.Text)
	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if utf8.RuneCountInString(i.Text) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	i.Type = strings.TrimSpace(i.Type)
	if i.Type == "" {
		i.Type = domain.CommentTypeNote
	} else if len(i.Type) > maxTypeLength {
		errs = append(errs, domain.FieldError{Field: "type", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListCommentsInput holds the parameters for ListComments.
type ListCommentsInput struct {
	ParentID       string
	Granularity    domain.Granularity
	UnresolvedOnly bool
}

// Validate checks all fields and collects all errors.
func (i *ListCommentsInput) Validate() error {
	var errs []domain.FieldError

	if i.ParentID == "" {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "required"})
	}
	if !i.Granularity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "granularity", Message: granularityMessage})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ResolveCommentInput holds the parameters for ResolveComment.
type ResolveCommentInput struct {
	CommentID   string
	Granularity domain.Granularity
	ActorID     string
}

// Validate checks all fields and collects all errors.
func (i *ResolveCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.CommentID == "" {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	if !i.Granularity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "granularity", Message: granularityMessage})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
