package local

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// SettingsRepo stores the settings document under SettingsKey.
type SettingsRepo struct {
	s *Store
}

func (r *SettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.getSettings(ctx)
}

func (r *SettingsRepo) Save(ctx context.Context, settings domain.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.kv.Set(ctx, SettingsKey, raw)
}

// getSettings fills keys missing from the stored document with defaults.
func (s *Store) getSettings(ctx context.Context) (*domain.Settings, error) {
	raw, ok, err := s.kv.Get(ctx, SettingsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("settings: %w", domain.ErrNotFound)
	}

	settings := domain.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &settings, nil
}
