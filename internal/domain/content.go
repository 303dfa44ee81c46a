package domain

import "time"

// ContentItem is a reviewable submission (a quiz) owned by the external
// content store. The engine only reads and writes Verified.
type ContentItem struct {
	ID        string
	Verified  bool
	CreatedAt time.Time
}

// VerificationLogEntry is one append-only row of the verification ledger.
// Seq is the storage-assigned sequence that orders entries for one item.
type VerificationLogEntry struct {
	ID        string
	Seq       int64
	ContentID string
	Action    VerificationAction
	ActorID   string
	Reason    *string
	CreatedAt time.Time
}

// VerificationStatus is the current flag of an item next to its latest log entry.
type VerificationStatus struct {
	ContentID string
	Verified  bool
	Latest    *VerificationLogEntry
}

// Consistent reports whether the flag agrees with the latest log entry:
// verified=true iff the latest action is "verified"; with no entry the item
// must still be unverified.
func (s VerificationStatus) Consistent() bool {
	if s.Latest == nil {
		return !s.Verified
	}
	return s.Verified == s.Latest.Action.ResultingFlag()
}
