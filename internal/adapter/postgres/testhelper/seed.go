package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

// UniqueID returns prefix plus a short random suffix.
func UniqueID(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedContentItem inserts a content item created now and returns its id.
func SeedContentItem(t *testing.T, pool *pgxpool.Pool, verified bool) string {
	t.Helper()
	return SeedContentItemAt(t, pool, verified, time.Now().UTC())
}

// SeedContentItemAt inserts a content item with an explicit created_at.
func SeedContentItemAt(t *testing.T, pool *pgxpool.Pool, verified bool, createdAt time.Time) string {
	t.Helper()

	id := UniqueID("quiz")
	_, err := pool.Exec(context.Background(),
		`INSERT INTO content_items (id, verified, created_at) VALUES ($1, $2, $3)`,
		id, verified, createdAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContentItem: %v", err)
	}
	return id
}

// SeedComment inserts an unresolved comment of type "issue" under parentID.
func SeedComment(t *testing.T, pool *pgxpool.Pool, g domain.Granularity, parentID string) domain.AuditComment {
	t.Helper()

	id := uuid.New()
	c := domain.AuditComment{
		ID:          id.String(),
		Granularity: g,
		ParentID:    parentID,
		AuthorID:    UniqueID("reviewer"),
		Text:        "needs a second look",
		Type:        domain.CommentTypeIssue,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO audit_comments_`+string(g)+` (id, parent_id, author_id, comment_text, comment_type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, c.ParentID, c.AuthorID, c.Text, c.Type, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}
	return c
}

// SeedLogEntry appends a verification log entry at the given time.
func SeedLogEntry(t *testing.T, pool *pgxpool.Pool, contentID string, action domain.VerificationAction, at time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO verification_log (id, content_id, action, actor_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), contentID, string(action), "seed-actor", at.UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLogEntry: %v", err)
	}
}

// SeedReviewer grants role to a fresh actor id and returns it.
func SeedReviewer(t *testing.T, pool *pgxpool.Pool, role domain.ReviewerRole) string {
	t.Helper()

	actorID := UniqueID(string(role))
	_, err := pool.Exec(context.Background(),
		`INSERT INTO reviewers (actor_id, role) VALUES ($1, $2)`, actorID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReviewer: %v", err)
	}
	return actorID
}
