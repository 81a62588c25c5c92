package config

import (
	"fmt"
	"time"
)

// Storage backends selectable with storage.backend.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	LLM       LLMConfig       `yaml:"llm"`
	Migration MigrationConfig `yaml:"migration"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy takes the client address from X-Forwarded-For.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend   string `yaml:"backend"    env:"STORAGE_BACKEND"    env-default:"postgres"`
	LocalPath string `yaml:"local_path" env:"STORAGE_LOCAL_PATH" env-default:"./data/habitflow.db"`
}

// DatabaseConfig holds PostgreSQL connection settings. Required only for the
// postgres backend and the local to relational migration.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	Tee        bool   `yaml:"tee"          env:"LOG_TEE"          env-default:"false"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"50"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds the per-IP request budget.
type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"RATELIMIT_ENABLED"  env-default:"true"`
	Requests int           `yaml:"requests" env:"RATELIMIT_REQUESTS" env-default:"100"`
	Window   time.Duration `yaml:"window"   env:"RATELIMIT_WINDOW"   env-default:"15m"`
}

// LLMConfig holds the suggestion provider settings. An empty APIKey
// disables every AI feature.
type LLMConfig struct {
	APIKey         string        `yaml:"api_key"         env:"LLM_API_KEY"`
	Model          string        `yaml:"model"           env:"LLM_MODEL"           env-default:"claude-3-5-haiku-latest"`
	FallbackModels []string      `yaml:"fallback_models" env:"LLM_FALLBACK_MODELS" env-separator:","`
	MaxTokens      int64         `yaml:"max_tokens"      env:"LLM_MAX_TOKENS"      env-default:"1000"`
	Timeout        time.Duration `yaml:"timeout"         env:"LLM_TIMEOUT"         env-default:"30s"`
}

// MigrationConfig holds the local to relational migration settings.
type MigrationConfig struct {
	MarkerKey string `yaml:"marker_key" env:"MIGRATION_MARKER_KEY" env-default:"migratedToDatabase"`
}
