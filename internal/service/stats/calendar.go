package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/stats/analytics"
)

// CalendarInput selects a month and an optional single habit.
type CalendarInput struct {
	Month   string // YYYY-MM; empty means the current month
	HabitID *uuid.UUID
}

// Calendar is the per-day status of one month.
type Calendar struct {
	Year    int
	Month   time.Month
	HabitID *uuid.UUID
	Days    []analytics.CalendarDay
}

// Calendar classifies every day of a month. With HabitID set only that
// habit is considered.
func (s *Service) Calendar(ctx context.Context, input CalendarInput) (*Calendar, error) {
	year, month := s.today().Year, s.today().Month
	if input.Month != "" {
		t, err := time.Parse("2006-01", input.Month)
		if err != nil {
			return nil, domain.NewValidationError("month", "must be YYYY-MM")
		}
		year, month = t.Year(), t.Month()
	}

	if input.HabitID != nil {
		if _, err := s.habits.GetByID(ctx, *input.HabitID); err != nil {
			return nil, fmt.Errorf("get habit: %w", err)
		}
	}

	habits, err := s.activeHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active habits: %w", err)
	}

	first := domain.Date{Year: year, Month: month, Day: 1}
	last := domain.DateOf(first.Time().AddDate(0, 1, -1))

	var ids []uuid.UUID
	if input.HabitID != nil {
		ids = []uuid.UUID{*input.HabitID}
	}
	entries, err := s.entries.ListByDateRange(ctx, first, last, ids)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return &Calendar{
		Year:    year,
		Month:   month,
		HabitID: input.HabitID,
		Days:    analytics.MonthCalendar(year, month, habits, entries, input.HabitID),
	}, nil
}
