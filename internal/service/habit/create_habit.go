package habit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// CreateHabit validates and stores a new habit.
func (s *Service) CreateHabit(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	habit, err := s.habits.Create(ctx, input.toHabit())
	if err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}

	s.log.InfoContext(ctx, "habit created",
		slog.String("habit_id", habit.ID.String()),
		slog.String("name", habit.Name),
		slog.String("category", habit.Category),
	)

	return habit, nil
}

// BulkCreateHabits stores several habits atomically. Either all are created or none.
func (s *Service) BulkCreateHabits(ctx context.Context, input BulkCreateHabitsInput) ([]*domain.Habit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created := make([]*domain.Habit, 0, len(input.Habits))
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for idx, in := range input.Habits {
			habit, createErr := s.habits.Create(txCtx, in.toHabit())
			if createErr != nil {
				return fmt.Errorf("create habit %d: %w", idx, createErr)
			}
			created = append(created, habit)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bulk create habits: %w", err)
	}

	s.log.InfoContext(ctx, "habits bulk created", slog.Int("count", len(created)))

	return created, nil
}
