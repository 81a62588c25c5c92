package entry

import (
	"context"
	"fmt"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/stats/analytics"
)

// HabitStats is a habit with its completion stats and current streak.
type HabitStats struct {
	domain.CompletionStats
	CurrentStreak int
	Habit         *domain.Habit
}

// HabitStats returns completion totals over the last Days days and the
// current streak, scanned back at most analytics.DefaultLookbackDays days.
func (s *Service) HabitStats(ctx context.Context, input HabitStatsInput) (*HabitStats, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	habit, err := s.habits.GetByID(ctx, input.HabitID)
	if err != nil {
		return nil, fmt.Errorf("get habit: %w", err)
	}

	today := s.today()
	stats, err := s.entries.CompletionStats(ctx, habit.ID, today.AddDays(-input.days()))
	if err != nil {
		return nil, fmt.Errorf("completion stats: %w", err)
	}

	start := today.AddDays(-(analytics.DefaultLookbackDays - 1))
	recent, err := s.entries.ListByHabit(ctx, habit.ID, domain.EntryFilter{StartDate: &start, EndDate: &today})
	if err != nil {
		return nil, fmt.Errorf("list recent entries: %w", err)
	}

	return &HabitStats{
		CompletionStats: stats,
		CurrentStreak:   analytics.CurrentStreak(habit.ID, recent, today, analytics.DefaultLookbackDays),
		Habit:           habit,
	}, nil
}
