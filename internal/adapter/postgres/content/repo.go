// Package content implements the content item repository using PostgreSQL.
// Content items are owned by the external quiz store; this package only reads
// them and flips the verified flag.
package content

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/quizreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

const entity = "content_item"

// Repo provides content item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new content repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT id, verified, created_at FROM content_items WHERE id = $1`

const getForUpdateSQL = `SELECT id, verified, created_at FROM content_items WHERE id = $1 FOR UPDATE`

const setVerifiedSQL = `UPDATE content_items SET verified = $2 WHERE id = $1`

const countUnverifiedSQL = `SELECT count(*) FROM content_items WHERE verified = false`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a content item without locking it.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.ContentItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var item domain.ContentItem
	if err := q.QueryRow(ctx, getByIDSQL, id).Scan(&item.ID, &item.Verified, &item.CreatedAt); err != nil {
		return domain.ContentItem{}, postgres.MapError(err, entity, id)
	}
	return item, nil
}

// GetForUpdate returns a content item and holds a row lock on it until the
// surrounding transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id string) (domain.ContentItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var item domain.ContentItem
	if err := q.QueryRow(ctx, getForUpdateSQL, id).Scan(&item.ID, &item.Verified, &item.CreatedAt); err != nil {
		return domain.ContentItem{}, postgres.MapError(err, entity, id)
	}
	return item, nil
}

// CountUnverified returns the number of items with verified = false.
func (r *Repo) CountUnverified(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, countUnverifiedSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unverified content_items: %w", err)
	}
	return n, nil
}

// ListUnverified returns unverified items, newest first, annotated with the
// number of unresolved quiz-level comments. Ties on created_at are broken by id.
func (r *Repo) ListUnverified(ctx context.Context, limit int) ([]domain.ReviewQueueItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	unresolved := sq.Select("count(*)").
		From("audit_comments_quiz ac").
		Where("ac.parent_id = ci.id").
		Where(sq.Eq{"ac.is_resolved": false})

	query := postgres.Builder().
		Select("ci.id", "ci.created_at").
		Column(sq.Alias(unresolved, "unresolved")).
		From("content_items ci").
		Where(sq.Eq{"ci.verified": false}).
		OrderBy("ci.created_at DESC", "ci.id").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build review queue query: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list unverified content_items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ReviewQueueItem, 0)
	for rows.Next() {
		var it domain.ReviewQueueItem
		if err := rows.Scan(&it.ContentID, &it.CreatedAt, &it.UnresolvedCommentCount); err != nil {
			return nil, fmt.Errorf("scan review queue row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review queue rows: %w", err)
	}

	return items, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// SetVerified overwrites the verified flag. Returns ErrNotFound if the item
// does not exist.
func (r *Repo) SetVerified(ctx context.Context, id string, verified bool) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, setVerifiedSQL, id, verified)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
