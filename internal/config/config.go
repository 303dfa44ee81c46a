package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Review    ReviewConfig    `yaml:"review"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// LockTimeout bounds how long a verification transaction waits for the
// content row lock before failing with a conflict.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	LockTimeout     time.Duration `yaml:"lock_timeout"       env:"DATABASE_LOCK_TIMEOUT"       env-default:"2s"`
}

// AuthConfig holds bearer token settings.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"quizreview"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReviewConfig holds verification engine parameters.
type ReviewConfig struct {
	Timezone               string        `yaml:"timezone"                 env:"REVIEW_TIMEZONE"                 env-default:"UTC"`
	QueueDefaultLimit      int           `yaml:"queue_default_limit"      env:"REVIEW_QUEUE_DEFAULT_LIMIT"      env-default:"20"`
	QueueMaxLimit          int           `yaml:"queue_max_limit"          env:"REVIEW_QUEUE_MAX_LIMIT"          env-default:"200"`
	DashboardTopItems      int           `yaml:"dashboard_top_items"      env:"REVIEW_DASHBOARD_TOP_ITEMS"      env-default:"5"`
	DashboardQueryTimeout  time.Duration `yaml:"dashboard_query_timeout"  env:"REVIEW_DASHBOARD_QUERY_TIMEOUT"  env-default:"3s"`
	ConflictMaxRetries     int           `yaml:"conflict_max_retries"     env:"REVIEW_CONFLICT_MAX_RETRIES"     env-default:"3"`
	ConflictInitialBackoff time.Duration `yaml:"conflict_initial_backoff" env:"REVIEW_CONFLICT_INITIAL_BACKOFF" env-default:"50ms"`
	ConflictMaxBackoff     time.Duration `yaml:"conflict_max_backoff"     env:"REVIEW_CONFLICT_MAX_BACKOFF"     env-default:"500ms"`
	IdentityCacheTTL       time.Duration `yaml:"identity_cache_ttl"       env:"REVIEW_IDENTITY_CACHE_TTL"       env-default:"0s"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// RateLimitConfig holds per-IP limits for write endpoints.
type RateLimitConfig struct {
	WritesPerMinute int           `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// SplitList splits a comma-separated config value, dropping blanks.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
