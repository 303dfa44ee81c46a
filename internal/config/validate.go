package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.LockTimeout <= 0 {
		return fmt.Errorf("database.lock_timeout must be > 0 (got %s)", c.Database.LockTimeout)
	}

	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}

	if c.RateLimit.WritesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
	}

	return nil
}

func (r *ReviewConfig) validate() error {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", r.Timezone, err)
	}
	r.Location = loc

	if r.QueueDefaultLimit <= 0 {
		return fmt.Errorf("queue_default_limit must be > 0 (got %d)", r.QueueDefaultLimit)
	}
	if r.QueueMaxLimit < r.QueueDefaultLimit {
		return fmt.Errorf("queue_max_limit (%d) must be >= queue_default_limit (%d)", r.QueueMaxLimit, r.QueueDefaultLimit)
	}
	if r.DashboardTopItems <= 0 || r.DashboardTopItems > r.QueueMaxLimit {
		return fmt.Errorf("dashboard_top_items must be in 1..%d (got %d)", r.QueueMaxLimit, r.DashboardTopItems)
	}
	if r.DashboardQueryTimeout <= 0 {
		return fmt.Errorf("dashboard_query_timeout must be > 0")
	}
	if r.ConflictMaxRetries < 0 {
		return fmt.Errorf("conflict_max_retries must be >= 0 (got %d)", r.ConflictMaxRetries)
	}
	if r.ConflictInitialBackoff <= 0 || r.ConflictMaxBackoff < r.ConflictInitialBackoff {
		return fmt.Errorf("conflict backoff must satisfy 0 < initial (%s) <= max (%s)", r.ConflictInitialBackoff, r.ConflictMaxBackoff)
	}
	if r.IdentityCacheTTL < 0 {
		return fmt.Errorf("identity_cache_ttl must be >= 0")
	}

	return nil
}
