// Package identity answers "may this actor review content?" on top of the
// reviewer store, with an optional short-lived in-process cache.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

type reviewerStore interface {
	Get(ctx context.Context, actorID string) (domain.Reviewer, error)
}

// Provider resolves reviewer capability for actor ids.
type Provider struct {
	store reviewerStore
	cache *cache.Cache
}

// NewProvider creates a Provider. A ttl of zero, the default, disables
// caching so grants and revocations are visible on the next request. A
// positive ttl lets a revoked reviewer keep writing for up to ttl.
func NewProvider(store reviewerStore, ttl time.Duration) *Provider {
	p := &Provider{store: store}
	if ttl > 0 {
		p.cache = cache.New(ttl, 2*ttl)
	}
	return p
}

// CanReview reports whether actorID holds the reviewer capability. Unknown
// actors are not an error. Store failures are returned and never cached.
func (p *Provider) CanReview(ctx context.Context, actorID string) (bool, error) {
	if actorID == "" {
		return false, nil
	}

	if p.cache != nil {
		if v, ok := p.cache.Get(actorID); ok {
			return v.(bool), nil
		}
	}

	rv, err := p.store.Get(ctx, actorID)
	var allowed bool
	switch {
	case err == nil:
		allowed = rv.Role.CanReview()
	case errors.Is(err, domain.ErrNotFound):
		allowed = false
	default:
		return false, fmt.Errorf("identity lookup %s: %w", actorID, err)
	}

	if p.cache != nil {
		p.cache.SetDefault(actorID, allowed)
	}
	return allowed, nil
}
