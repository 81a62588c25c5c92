package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", c.Server.Port))
	}

	if err := c.Storage.validate(); err != nil {
		errs = append(errs, fmt.Errorf("storage: %w", err))
	}

	if c.Storage.Backend == BackendPostgres {
		if err := c.Database.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}

	if err := c.Log.validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		errs = append(errs, fmt.Errorf("ratelimit: requests and window must be > 0 when enabled"))
	}

	if c.LLM.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens))
	}

	if strings.TrimSpace(c.Migration.MarkerKey) == "" {
		errs = append(errs, fmt.Errorf("migration.marker_key must not be empty"))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))
	switch s.Backend {
	case BackendPostgres, BackendMemory:
	case BackendSQLite:
		if strings.TrimSpace(s.LocalPath) == "" {
			return fmt.Errorf("local_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("backend must be one of %s, %s, %s (got %q)", BackendPostgres, BackendSQLite, BackendMemory, s.Backend)
	}
	return nil
}

// Validate checks the settings needed to open a pool. Exported for the
// migration binaries, which need the database regardless of storage.backend.
func (d DatabaseConfig) Validate() error {
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be between 0 and max_conns (got %d)", d.MinConns)
	}
	return nil
}

func (l *LogConfig) validate() error {
	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	switch l.Format {
	case "json", "text", "console":
	default:
		return fmt.Errorf("format must be json, text or console (got %q)", l.Format)
	}
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}
	if l.Tee && l.File == "" {
		return fmt.Errorf("tee requires file")
	}
	return nil
}
