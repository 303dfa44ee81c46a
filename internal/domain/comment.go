package domain

import "time"

// AuditComment is a reviewer comment attached to a quiz, question or answer.
// Only IsResolved may change after creation, and only from false to true.
type AuditComment struct {
	ID          string
	Granularity Granularity
	ParentID    string
	AuthorID    string
	Text        string
	Type        string
	IsResolved  bool
	CreatedAt   time.Time
}

// CommentFilter narrows a comment listing.
type CommentFilter struct {
	UnresolvedOnly bool
}
