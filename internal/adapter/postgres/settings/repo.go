// Package settings stores the single settings document as a JSONB row.
package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSQL = `SELECT settings FROM user_settings WHERE id = 1`

const saveSQL = `
INSERT INTO user_settings (id, settings, updated_at)
VALUES (1, $1, now())
ON CONFLICT (id) DO UPDATE
SET settings = EXCLUDED.settings,
    updated_at = now()`

// Get returns the stored settings. Keys missing from the stored document
// keep their default value. Returns domain.ErrNotFound when nothing was saved.
func (r *Repo) Get(ctx context.Context) (*domain.Settings, error) {
	var raw []byte
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSQL).Scan(&raw); err != nil {
		return nil, postgres.MapError(err, "settings", 1)
	}

	s := domain.DefaultSettings()
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}

// Save replaces the stored settings document.
func (r *Repo) Save(ctx context.Context, s domain.Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, saveSQL, raw); err != nil {
		return postgres.MapError(err, "settings", 1)
	}
	return nil
}
