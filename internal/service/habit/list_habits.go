package habit

import (
	"context"
	"fmt"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// ListHabits returns habits matching the filter, newest first.
func (s *Service) ListHabits(ctx context.Context, input ListHabitsInput) ([]*domain.Habit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	habits, err := s.habits.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

// ListHabitsWithStats returns habits with entry totals over the last StatsWindowDays days.
func (s *Service) ListHabitsWithStats(ctx context.Context, input ListHabitsInput) ([]domain.HabitWithStats, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	since := s.today().AddDays(-StatsWindowDays)
	habits, err := s.habits.ListWithStats(ctx, input.filter(), since)
	if err != nil {
		return nil, fmt.Errorf("list habits with stats: %w", err)
	}
	return habits, nil
}

// Categories returns the number of active habits per category.
func (s *Service) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	cats, err := s.habits.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}
