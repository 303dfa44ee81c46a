// Package reviewer stores reviewer capabilities used to authorize
// verification and comment writes.
package reviewer

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/quizreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

const entity = "reviewer"

// Repo provides reviewer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reviewer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSQL = `SELECT actor_id, role, created_at FROM reviewers WHERE actor_id = $1`

const grantSQL = `
INSERT INTO reviewers (actor_id, role) VALUES ($1, $2)
ON CONFLICT (actor_id) DO UPDATE SET role = EXCLUDED.role
RETURNING actor_id, role, created_at`

const revokeSQL = `DELETE FROM reviewers WHERE actor_id = $1`

const listSQL = `SELECT actor_id, role, created_at FROM reviewers ORDER BY actor_id`

// Get returns the reviewer record for actorID.
func (r *Repo) Get(ctx context.Context, actorID string) (domain.Reviewer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rv, err := scanReviewer(q.QueryRow(ctx, getSQL, actorID))
	if err != nil {
		return domain.Reviewer{}, postgres.MapError(err, entity, actorID)
	}
	return rv, nil
}

// Grant assigns role to actorID, replacing any previous role.
func (r *Repo) Grant(ctx context.Context, actorID string, role domain.ReviewerRole) (domain.Reviewer, error) {
	if !role.IsValid() {
		return domain.Reviewer{}, domain.NewValidationError("role", "must be reviewer or admin")
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rv, err := scanReviewer(q.QueryRow(ctx, grantSQL, actorID, string(role)))
	if err != nil {
		return domain.Reviewer{}, postgres.MapError(err, entity, actorID)
	}
	return rv, nil
}

// Revoke removes all capabilities from actorID.
func (r *Repo) Revoke(ctx context.Context, actorID string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, revokeSQL, actorID)
	if err != nil {
		return postgres.MapError(err, entity, actorID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, actorID, domain.ErrNotFound)
	}
	return nil
}

// List returns every reviewer ordered by actor id.
func (r *Repo) List(ctx context.Context) ([]domain.Reviewer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list reviewers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Reviewer, 0)
	for rows.Next() {
		rv, err := scanReviewer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reviewer: %w", err)
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReviewer(row scanner) (domain.Reviewer, error) {
	var (
		rv   domain.Reviewer
		role string
	)
	if err := row.Scan(&rv.ActorID, &role, &rv.CreatedAt); err != nil {
		return domain.Reviewer{}, err
	}
	rv.Role = domain.ReviewerRole(role)
	return rv, nil
}
