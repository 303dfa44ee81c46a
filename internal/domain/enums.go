package domain

// Granularity is the level at which an audit comment attaches.
type Granularity string

const (
	GranularityQuiz     Granularity = "quiz"
	GranularityQuestion Granularity = "question"
	GranularityAnswer   Granularity = "answer"
)

func (g Granularity) String() string { return string(g) }

func (g Granularity) IsValid() bool {
	switch g {
	case GranularityQuiz, GranularityQuestion, GranularityAnswer:
		return true
	}
	return false
}

// AllGranularities lists every granularity in hierarchy order.
func AllGranularities() []Granularity {
	return []Granularity{GranularityQuiz, GranularityQuestion, GranularityAnswer}
}

// VerificationAction is the kind of transition recorded in the verification log.
type VerificationAction string

const (
	ActionVerified   VerificationAction = "verified"
	ActionUnverified VerificationAction = "unverified"
	ActionRejected   VerificationAction = "rejected"
)

func (a VerificationAction) String() string { return string(a) }

func (a VerificationAction) IsValid() bool {
	switch a {
	case ActionVerified, ActionUnverified, ActionRejected:
		return true
	}
	return false
}

// ResultingFlag returns the content verified flag this action leaves behind.
func (a VerificationAction) ResultingFlag() bool {
	return a == ActionVerified
}

// Comment types the engine itself writes. Callers may use any other tag.
const (
	CommentTypeRejected = "rejected"
	CommentTypeIssue    = "issue"
	CommentTypeNote     = "note"
)

// ReviewerRole represents the capability level of an actor.
type ReviewerRole string

const (
	RoleReviewer ReviewerRole = "reviewer"
	RoleAdmin    ReviewerRole = "admin"
)

func (r ReviewerRole) String() string { return string(r) }

func (r ReviewerRole) IsValid() bool {
	switch r {
	case RoleReviewer, RoleAdmin:
		return true
	}
	return false
}

// CanReview reports whether the role grants the reviewer capability.
func (r ReviewerRole) CanReview() bool {
	return r.IsValid()
}
