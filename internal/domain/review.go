package domain

import "time"

// ReviewQueueItem is an unverified content item annotated with the number of
// unresolved quiz-level comments on it.
type ReviewQueueItem struct {
	ContentID              string
	UnresolvedCommentCount int
	CreatedAt              time.Time
}

// DashboardSnapshot holds the reviewer dashboard counters for one day window.
// Degraded lists the fields that could not be computed and were zeroed.
type DashboardSnapshot struct {
	Date                 string
	UnverifiedCount      int
	PendingCommentsCount int
	VerifiedToday        int
	RejectedToday        int
	TopReviewItems       []ReviewQueueItem
	Degraded             []string
}

// Reviewer is an actor known to the identity provider.
type Reviewer struct {
	ActorID   string
	Role      ReviewerRole
	CreatedAt time.Time
}
