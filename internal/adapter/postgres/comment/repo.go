// Package comment implements the audit comment store using PostgreSQL.
// Each granularity lives in its own table; rows are never deleted and only
// is_resolved may change after insert.
package comment

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/quizreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

const entity = "audit_comment"

// tables is the whitelist of comment tables. Table names are never built
// from caller input.
var tables = map[domain.Granularity]string{
	domain.GranularityQuiz:     "audit_comments_quiz",
	domain.GranularityQuestion: "audit_comments_question",
	domain.GranularityAnswer:   "audit_comments_answer",
}

var (
	insertColumns = []string{"id", "parent_id", "author_id", "comment_text", "comment_type", "is_resolved", "created_at"}
	selectColumns = []string{"id::text", "parent_id", "author_id", "comment_text", "comment_type", "is_resolved", "created_at"}
)

// Repo provides audit comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func tableFor(g domain.Granularity) (string, error) {
	table, ok := tables[g]
	if !ok {
		return "", domain.NewValidationError("granularity", "must be quiz, question or answer")
	}
	return table, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts c into the table for c.Granularity and returns the stored row.
func (r *Repo) Create(ctx context.Context, c domain.AuditComment) (domain.AuditComment, error) {
	table, err := tableFor(c.Granularity)
	if err != nil {
		return domain.AuditComment{}, err
	}

	uid, ok := parseID(c.ID)
	if !ok {
		return domain.AuditComment{}, domain.NewValidationError("id", "must be a UUID")
	}

	query := postgres.Builder().
		Insert(table).
		Columns(insertColumns...).
		Values(uid, c.ParentID, c.AuthorID, c.Text, c.Type, false, c.CreatedAt).
		Suffix("RETURNING " + strings.Join(selectColumns, ", "))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return domain.AuditComment{}, fmt.Errorf("build insert %s: %w", table, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	out, err := scanComment(q.QueryRow(ctx, sqlStr, args...), c.Granularity)
	if err != nil {
		return domain.AuditComment{}, postgres.MapError(err, entity, c.ID)
	}
	return out, nil
}

// Resolve marks a comment resolved. Resolving an already resolved comment
// succeeds without writing. Returns ErrNotFound if no such comment exists.
func (r *Repo) Resolve(ctx context.Context, g domain.Granularity, id string) error {
	table, err := tableFor(g)
	if err != nil {
		return err
	}

	uid, ok := parseID(id)
	if !ok {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// The CTE distinguishes "already resolved" from "missing" in one round trip.
	sqlStr := `
WITH target AS (SELECT id, is_resolved FROM ` + table + ` WHERE id = $1 FOR UPDATE),
upd AS (
    UPDATE ` + table + ` SET is_resolved = true
    WHERE id IN (SELECT id FROM target WHERE NOT is_resolved)
    RETURNING id
)
SELECT count(*) FROM target`

	q := postgres.QuerierFromCtx(ctx, r.db)
	var found int
	if err := q.QueryRow(ctx, sqlStr, uid).Scan(&found); err != nil {
		return postgres.MapError(err, entity, id)
	}
	if found == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one comment.
func (r *Repo) GetByID(ctx context.Context, g domain.Granularity, id string) (domain.AuditComment, error) {
	table, err := tableFor(g)
	if err != nil {
		return domain.AuditComment{}, err
	}

	uid, ok := parseID(id)
	if !ok {
		return domain.AuditComment{}, fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	sqlStr, args, err := postgres.Builder().
		Select(selectColumns...).
		From(table).
		Where(sq.Eq{"id": uid}).
		ToSql()
	if err != nil {
		return domain.AuditComment{}, fmt.Errorf("build select %s: %w", table, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	c, err := scanComment(q.QueryRow(ctx, sqlStr, args...), g)
	if err != nil {
		return domain.AuditComment{}, postgres.MapError(err, entity, id)
	}
	return c, nil
}

// ListByParent returns comments for parentID, newest first.
func (r *Repo) ListByParent(ctx context.Context, g domain.Granularity, parentID string, filter domain.CommentFilter) ([]domain.AuditComment, error) {
	table, err := tableFor(g)
	if err != nil {
		return nil, err
	}

	query := postgres.Builder().
		Select(selectColumns...).
		From(table).
		Where(sq.Eq{"parent_id": parentID}).
		OrderBy("created_at DESC", "seq DESC")
	if filter.UnresolvedOnly {
		query = query.Where(sq.Eq{"is_resolved": false})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", table, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s by parent %s: %w", table, parentID, err)
	}
	defer rows.Close()

	comments := make([]domain.AuditComment, 0)
	for rows.Next() {
		c, err := scanComment(rows, g)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", table, err)
	}

	return comments, nil
}

// CountUnresolved counts unresolved comments of granularity g across all parents.
func (r *Repo) CountUnresolved(ctx context.Context, g domain.Granularity) (int, error) {
	return r.countUnresolved(ctx, g, nil)
}

// CountUnresolvedByParent counts unresolved comments of granularity g for one parent.
func (r *Repo) CountUnresolvedByParent(ctx context.Context, g domain.Granularity, parentID string) (int, error) {
	return r.countUnresolved(ctx, g, sq.Eq{"parent_id": parentID})
}

func (r *Repo) countUnresolved(ctx context.Context, g domain.Granularity, extra sq.Sqlizer) (int, error) {
	table, err := tableFor(g)
	if err != nil {
		return 0, err
	}

	query := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"is_resolved": false})
	if extra != nil {
		query = query.Where(extra)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count %s: %w", table, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	var n int
	if err := q.QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unresolved %s: %w", table, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanComment(row scanner, g domain.Granularity) (domain.AuditComment, error) {
	c := domain.AuditComment{Granularity: g}
	err := row.Scan(&c.ID, &c.ParentID, &c.AuthorID, &c.Text, &c.Type, &c.IsResolved, &c.CreatedAt)
	return c, err
}

// parseID returns the UUID key for id. Strings that are not UUIDs cannot
// name an existing comment.
func parseID(id string) (uuid.UUID, bool) {
	uid, err := uuid.Parse(id)
	return uid, err == nil
}
