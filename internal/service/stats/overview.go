package stats

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/stats/analytics"
)

// Overview is the dashboard for the last Days days.
type Overview struct {
	Days              int
	TotalHabits       int
	TodayRate         float64
	WeeklyCompletion  float64
	PerfectDayStreak  int
	BestPerfectStreak int
	Series            []analytics.DayPoint
	WeeklyTrend       []analytics.WeekPoint
	PerHabit          []analytics.HabitRate
	Categories        []analytics.CategoryShare
}

// Overview loads active habits and the entries of the window and computes
// every dashboard aggregate from that single snapshot.
func (s *Service) Overview(ctx context.Context, days int) (*Overview, error) {
	if days == 0 {
		days = DefaultWindowDays
	}
	if days < 1 || days > MaxWindowDays {
		return nil, domain.NewValidationError("days", fmt.Sprintf("must be between 1 and %d", MaxWindowDays))
	}

	today := s.today()
	span := max(days, analytics.DefaultWeeks*7, analytics.DefaultLookbackDays)

	var (
		habits []*domain.Habit
		all    []*domain.Entry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if habits, err = s.activeHabits(gctx); err != nil {
			return fmt.Errorf("list active habits: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if all, err = s.entries.ListByDateRange(gctx, today.AddDays(-(span - 1)), today, nil); err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	windowStart := today.AddDays(-(days - 1))
	window := make([]*domain.Entry, 0, len(all))
	for _, e := range all {
		if !e.Date.Before(windowStart) {
			window = append(window, e)
		}
	}

	series := analytics.WindowSeries(days, today, habits, all)
	return &Overview{
		Days:              days,
		TotalHabits:       len(habits),
		TodayRate:         analytics.DailyCompletionRate(today, habits, all),
		WeeklyCompletion:  analytics.WeeklyCompletion(today, habits, all),
		PerfectDayStreak:  analytics.PerfectDayStreak(habits, all, today, analytics.DefaultLookbackDays),
		BestPerfectStreak: analytics.BestPerfectStreak(series),
		Series:            series,
		WeeklyTrend:       analytics.WeeklyTrend(analytics.DefaultWeeks, today, habits, all),
		PerHabit:          analytics.PerHabitStats(habits, window),
		Categories:        analytics.CategoryDistribution(habits, window),
	}, nil
}
