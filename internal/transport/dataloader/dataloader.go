// Package dataloader provides per-request DataLoaders that batch
// latest-verification lookups for list responses into single SQL calls.
// Loaders call repositories directly, bypassing the service layer; they only
// serve read-side annotations.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

const (
	maxBatch = 200
	wait     = 2 * time.Millisecond
)

// LogRepo is the verification log lookup the loaders batch over.
type LogRepo interface {
	LatestByContentIDs(ctx context.Context, contentIDs []string) (map[string]domain.VerificationLogEntry, error)
}

// Loaders contains the per-request DataLoaders. Created per request via
// NewLoaders so cached results never outlive the request.
type Loaders struct {
	LatestByContentID *dataloader.Loader[string, *domain.VerificationLogEntry]
}

// NewLoaders creates a new set of DataLoaders backed by the verification log.
func NewLoaders(logs LogRepo) *Loaders {
	return &Loaders{
		LatestByContentID: dataloader.NewBatchedLoader(
			newLatestBatchFn(logs),
			dataloader.WithWait[string, *domain.VerificationLogEntry](wait),
			dataloader.WithBatchCapacity[string, *domain.VerificationLogEntry](maxBatch),
		),
	}
}

// newLatestBatchFn resolves keys to their latest entry; keys with no history
// resolve to nil.
func newLatestBatchFn(repo LogRepo) dataloader.BatchFunc[string, *domain.VerificationLogEntry] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.VerificationLogEntry] {
		results := make([]*dataloader.Result[*domain.VerificationLogEntry], len(keys))

		latest, err := repo.LatestByContentIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.VerificationLogEntry]{Error: err}
			}
			return results
		}

		for i, key := range keys {
			res := &dataloader.Result[*domain.VerificationLogEntry]{}
			if e, ok := latest[key]; ok {
				res.Data = &e
			}
			results[i] = res
		}
		return results
	}
}

// LoadLatest resolves the latest entry for every id using one batched query.
// The result is aligned with ids.
func (l *Loaders) LoadLatest(ctx context.Context, ids []string) ([]*domain.VerificationLogEntry, error) {
	thunks := make([]dataloader.Thunk[*domain.VerificationLogEntry], len(ids))
	for i, id := range ids {
		thunks[i] = l.LatestByContentID.Load(ctx, id)
	}

	out := make([]*domain.VerificationLogEntry, len(ids))
	for i, thunk := range thunks {
		e, err := thunk()
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil when the middleware
// is not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
