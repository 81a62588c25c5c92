package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

type settingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

// Service reads and patches the settings document.
type Service struct {
	repo settingsRepo
	log  *slog.Logger
}

// NewService creates a new Settings service.
func NewService(log *slog.Logger, repo settingsRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "settings"),
	}
}

// Get returns the stored settings, or the defaults when none were saved.
func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	stored, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return *stored, nil
}

// Update validates the patch, merges it over the current settings and saves the result.
func (s *Service) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	if err := patch.Validate(); err != nil {
		return domain.Settings{}, err
	}

	current, err := s.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	merged := domain.MergeSettings(current, patch)
	if err := s.repo.Save(ctx, merged); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("theme", merged.Theme.String()),
		slog.Bool("ai_enabled", merged.AI.Enabled),
	)

	return merged, nil
}

// Reset restores the defaults.
func (s *Service) Reset(ctx context.Context) (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if err := s.repo.Save(ctx, defaults); err != nil {
		return domain.Settings{}, fmt.Errorf("reset settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings reset")

	return defaults, nil
}
