package verification

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

const (
	maxIDLength     = 255
	maxReasonLength = 4000
)

// TransitionInput holds the parameters for Verify and Unverify.
type TransitionInput struct {
	ContentID string
	ActorID   string
	Reason    *string
}

// Validate checks all fields and collects all errors. A blank reason is
// normalized to nil; any other reason is kept as sent.
func (i *TransitionInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateContentID(i.ContentID)...)

	if i.Reason != nil {
		switch {
		case strings.TrimSpace(*i.Reason) == "":
			i.Reason = nil
		case utf8.RuneCountInString(*i.Reason) > maxReasonLength:
			errs = append(errs, domain.FieldError{Field: "reason", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RejectInput holds the parameters for Reject. Reason is required and is
// stored verbatim as both the log reason and the comment text.
type RejectInput struct {
	ContentID string
	ActorID   string
	Reason    string
}

// Validate checks all fields and collects all errors.
func (i *RejectInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateContentID(i.ContentID)...)

	if strings.TrimSpace(i.Reason) == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	} else if utf8.RuneCountInString(i.Reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// HistoryInput holds the parameters for History. Zero Limit means default.
type HistoryInput struct {
	ContentID string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i *HistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ContentID == "" {
		errs = append(errs, domain.FieldError{Field: "content_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > MaxHistoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ActorID is not validated here; an empty actor fails authorization instead.
func validateContentID(contentID string) []domain.FieldError {
	var errs []domain.FieldError
	if contentID == "" {
		errs = append(errs, domain.FieldError{Field: "content_id", Message: "required"})
	} else if len(contentID) > maxIDLength {
		errs = append(errs, domain.FieldError{Field: "content_id", Message: "too long"})
	}
	return errs
}
