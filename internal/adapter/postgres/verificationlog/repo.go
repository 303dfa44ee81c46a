// Package verificationlog implements the append-only verification ledger
// using PostgreSQL. There are deliberately no update or delete methods; the
// table also carries a trigger that rejects both.
package verificationlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/quizreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

const entity = "verification_log"

// Repo provides verification log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new verification log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const entryColumns = `id::text, seq, content_id, action, actor_id, reason, created_at`

const appendSQL = `
INSERT INTO verification_log (id, content_id, action, actor_id, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + entryColumns

const historySQL = `
SELECT ` + entryColumns + `
FROM verification_log
WHERE content_id = $1
ORDER BY seq DESC
LIMIT $2 OFFSET $3`

const countByContentSQL = `SELECT count(*) FROM verification_log WHERE content_id = $1`

const latestSQL = `
SELECT ` + entryColumns + `
FROM verification_log
WHERE content_id = $1
ORDER BY seq DESC
LIMIT 1`

const latestByContentIDsSQL = `
SELECT DISTINCT ON (content_id) ` + entryColumns + `
FROM verification_log
WHERE content_id = ANY($1::text[])
ORDER BY content_id, seq DESC`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts a new entry. Seq is assigned by the database, so entries
// appended while holding the content row lock are totally ordered per item.
func (r *Repo) Append(ctx context.Context, e domain.VerificationLogEntry) (domain.VerificationLogEntry, error) {
	uid, err := uuid.Parse(e.ID)
	if err != nil {
		return domain.VerificationLogEntry{}, domain.NewValidationError("id", "must be a UUID")
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	row := q.QueryRow(ctx, appendSQL, uid, e.ContentID, string(e.Action), e.ActorID, e.Reason, e.CreatedAt)

	out, err := scanEntry(row)
	if err != nil {
		return domain.VerificationLogEntry{}, postgres.MapError(err, entity, e.ContentID)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// History returns entries for contentID, newest first.
func (r *Repo) History(ctx context.Context, contentID string, limit, offset int) ([]domain.VerificationLogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, historySQL, contentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("history %s %s: %w", entity, contentID, err)
	}
	return collectEntries(rows)
}

// CountByContent returns the total number of entries for contentID.
func (r *Repo) CountByContent(ctx context.Context, contentID string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, countByContentSQL, contentID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s %s: %w", entity, contentID, err)
	}
	return n, nil
}

// Latest returns the most recent entry for contentID, or nil if none exists.
func (r *Repo) Latest(ctx context.Context, contentID string) (*domain.VerificationLogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	e, err := scanEntry(q.QueryRow(ctx, latestSQL, contentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.MapError(err, entity, contentID)
	}
	return &e, nil
}

// LatestByContentIDs returns the latest entry per content id. Ids without
// entries are absent from the map.
func (r *Repo) LatestByContentIDs(ctx context.Context, contentIDs []string) (map[string]domain.VerificationLogEntry, error) {
	out := make(map[string]domain.VerificationLogEntry, len(contentIDs))
	if len(contentIDs) == 0 {
		return out, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, latestByContentIDsSQL, contentIDs)
	if err != nil {
		return nil, fmt.Errorf("latest %s by content ids: %w", entity, err)
	}

	entries, err := collectEntries(rows)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		out[e.ContentID] = e
	}
	return out, nil
}

// CountByActionBetween counts entries with the given action whose created_at
// falls in [from, to).
func (r *Repo) CountByActionBetween(ctx context.Context, action domain.VerificationAction, from, to time.Time) (int, error) {
	sqlStr, args, err := postgres.Builder().
		Select("count(*)").
		From("verification_log").
		Where(sq.Eq{"action": string(action)}).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count by action: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	var n int
	if err := q.QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s by action %s: %w", entity, action, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (domain.VerificationLogEntry, error) {
	var (
		e      domain.VerificationLogEntry
		action string
	)
	if err := row.Scan(&e.ID, &e.Seq, &e.ContentID, &action, &e.ActorID, &e.Reason, &e.CreatedAt); err != nil {
		return domain.VerificationLogEntry{}, err
	}
	e.Action = domain.VerificationAction(action)
	return e, nil
}

func collectEntries(rows pgx.Rows) ([]domain.VerificationLogEntry, error) {
	defer rows.Close()

	entries := make([]domain.VerificationLogEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", entity, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", entity, err)
	}
	return entries, nil
}
