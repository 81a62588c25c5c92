package habit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// UpdateHabit applies a partial update. Only provided fields change.
func (s *Service) UpdateHabit(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	habit, err := s.habits.Update(ctx, input.HabitID, input.params())
	if err != nil {
		return nil, fmt.Errorf("update habit: %w", err)
	}

	s.log.InfoContext(ctx, "habit updated", slog.String("habit_id", habit.ID.String()))

	return habit, nil
}
