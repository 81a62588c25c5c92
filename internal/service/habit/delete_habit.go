package habit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// DeleteHabit deactivates a habit. Its entries are kept.
func (s *Service) DeleteHabit(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	habit, err := s.habits.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("soft delete habit: %w", err)
	}

	s.log.InfoContext(ctx, "habit deactivated", slog.String("habit_id", id.String()))

	return habit, nil
}

// DestroyHabit permanently removes a habit and all its entries.
func (s *Service) DestroyHabit(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	deleted, err := s.habits.HardDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("hard delete habit: %w", err)
	}
	if !deleted {
		return fmt.Errorf("hard delete habit %s: %w", id, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "habit destroyed", slog.String("habit_id", id.String()))

	return nil
}
