package analytics

import (
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// CurrentStreak counts consecutive completed days for habitID scanning back
// from today. A missing entry breaks the streak like an incomplete one.
// The scan covers at most lookback days, so the result never exceeds it.
func CurrentStreak(habitID uuid.UUID, entries []*domain.Entry, today domain.Date, lookback int) int {
	if lookback <= 0 {
		lookback = DefaultLookbackDays
	}
	c := index(entries)

	streak := 0
	for i := 0; i < lookback; i++ {
		if !c.done(habitID, today.AddDays(-i)) {
			break
		}
		streak++
	}
	return streak
}

// PerfectDayStreak counts consecutive days, back from today, on which every
// habit in habits has a completed entry. No habits means 0.
func PerfectDayStreak(habits []*domain.Habit, entries []*domain.Entry, today domain.Date, lookback int) int {
	if len(habits) == 0 {
		return 0
	}
	if lookback <= 0 {
		lookback = DefaultLookbackDays
	}
	c := index(entries)

	streak := 0
	for i := 0; i < lookback; i++ {
		if c.countOn(today.AddDays(-i), habits) != len(habits) {
			break
		}
		streak++
	}
	return streak
}

// BestPerfectStreak returns the longest run of 100% days in series.
func BestPerfectStreak(series []DayPoint) int {
	best, run := 0, 0
	for _, p := range series {
		if p.TotalHabits > 0 && p.CompletedCount == p.TotalHabits {
			run++
			best = max(best, run)
		} else {
			run = 0
		}
	}
	return best
}

// LongestStreak returns the longest run of consecutive completed days for
// habitID over every recorded entry.
func LongestStreak(habitID uuid.UUID, entries []*domain.Entry) int {
	var dates []domain.Date
	for _, e := range entries {
		if e.HabitID == habitID && e.Completed {
			dates = append(dates, e.Date)
		}
	}
	if len(dates) == 0 {
		return 0
	}
	slices.SortFunc(dates, domain.Date.Compare)
	dates = slices.Compact(dates)

	best, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i-1].AddDays(1) == dates[i] {
			run++
			best = max(best, run)
		} else {
			run = 1
		}
	}
	return best
}
