package analytics

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// DayPoint is one day of a window series.
type DayPoint struct {
	Date           domain.Date
	CompletedCount int
	TotalHabits    int
	RatePercent    float64
}

// WeekPoint is one 7-day bucket of a weekly trend.
type WeekPoint struct {
	Label             string
	Start             domain.Date
	End               domain.Date
	CompletionPercent float64
}

// HabitRate is the completion rate over the entries recorded for one habit.
type HabitRate struct {
	HabitID   uuid.UUID
	Name      string
	Category  string
	Color     string
	Completed int
	Recorded  int
	Rate      float64
}

// CategoryShare is the number of completed entries in a category.
type CategoryShare struct {
	Category  string
	Completed int
}

// CalendarDay is the status of one day of a month calendar.
type CalendarDay struct {
	Date    domain.Date
	Status  domain.DayStatus
	Percent float64
}

// DailyCompletionRate is the share of habits completed on date, in percent.
func DailyCompletionRate(date domain.Date, habits []*domain.Habit, entries []*domain.Entry) float64 {
	return domain.Percent(index(entries).countOn(date, habits), len(habits))
}

// WindowSeries returns one point per day for the last days days, today
// included, oldest first.
func WindowSeries(days int, today domain.Date, habits []*domain.Habit, entries []*domain.Entry) []DayPoint {
	if days <= 0 {
		return []DayPoint{}
	}
	c := index(entries)

	out := make([]DayPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		n := c.countOn(d, habits)
		out = append(out, DayPoint{
			Date:           d,
			CompletedCount: n,
			TotalHabits:    len(habits),
			RatePercent:    domain.Percent(n, len(habits)),
		})
	}
	return out
}

// WeeklyTrend buckets the last weeks*7 days into 7-day windows ending today,
// oldest first and labelled "Week 1".."Week N".
func WeeklyTrend(weeks int, today domain.Date, habits []*domain.Habit, entries []*domain.Entry) []WeekPoint {
	if weeks <= 0 {
		weeks = DefaultWeeks
	}
	c := index(entries)

	out := make([]WeekPoint, 0, weeks)
	for w := weeks - 1; w >= 0; w-- {
		end := today.AddDays(-7 * w)
		start := end.AddDays(-6)

		completed := 0
		for d := start; !d.After(end); d = d.AddDays(1) {
			completed += c.countOn(d, habits)
		}
		out = append(out, WeekPoint{
			Label:             fmt.Sprintf("Week %d", weeks-w),
			Start:             start,
			End:               end,
			CompletionPercent: domain.Percent(completed, len(habits)*7),
		})
	}
	return out
}

// WeeklyCompletion is the completion percentage of the 7 days ending today.
func WeeklyCompletion(today domain.Date, habits []*domain.Habit, entries []*domain.Entry) float64 {
	return WeeklyTrend(1, today, habits, entries)[0].CompletionPercent
}

// PerHabitStats divides completed by recorded entries per habit, so habits
// are not penalized for days before they existed.
func PerHabitStats(habits []*domain.Habit, entries []*domain.Entry) []HabitRate {
	type counts struct{ completed, recorded int }
	byHabit := make(map[uuid.UUID]counts, len(habits))
	for _, e := range entries {
		c := byHabit[e.HabitID]
		c.recorded++
		if e.Completed {
			c.completed++
		}
		byHabit[e.HabitID] = c
	}

	out := make([]HabitRate, 0, len(habits))
	for _, h := range habits {
		c := byHabit[h.ID]
		out = append(out, HabitRate{
			HabitID:   h.ID,
			Name:      h.Name,
			Category:  h.Category,
			Color:     h.Color,
			Completed: c.completed,
			Recorded:  c.recorded,
			Rate:      domain.Percent(c.completed, c.recorded),
		})
	}
	return out
}

// CategoryDistribution counts completed entries by their habit's category,
// largest first, ties by name. Categories of habits with no completions are
// reported with 0.
func CategoryDistribution(habits []*domain.Habit, entries []*domain.Entry) []CategoryShare {
	categoryOf := make(map[uuid.UUID]string, len(habits))
	counts := make(map[string]int)
	for _, h := range habits {
		categoryOf[h.ID] = h.Category
		counts[h.Category] += 0
	}
	for _, e := range entries {
		if cat, ok := categoryOf[e.HabitID]; ok && e.Completed {
			counts[cat]++
		}
	}

	out := make([]CategoryShare, 0, len(counts))
	for cat, n := range counts {
		out = append(out, CategoryShare{Category: cat, Completed: n})
	}
	slices.SortFunc(out, func(a, b CategoryShare) int {
		if a.Completed != b.Completed {
			return b.Completed - a.Completed
		}
		return strings.Compare(a.Category, b.Category)
	})
	return out
}

// CalendarStatus classifies date. With filter set only that habit is
// considered and the result is completed or not-completed.
func CalendarStatus(date domain.Date, habits []*domain.Habit, entries []*domain.Entry, filter *uuid.UUID) domain.DayStatus {
	status, _ := classify(date, habits, index(entries), filter)
	return status
}

func classify(date domain.Date, habits []*domain.Habit, c completions, filter *uuid.UUID) (domain.DayStatus, float64) {
	if filter != nil {
		if c.done(*filter, date) {
			return domain.DayStatusCompleted, 100
		}
		return domain.DayStatusNotCompleted, 0
	}
	if len(habits) == 0 {
		return domain.DayStatusNone, 0
	}

	// Thresholds compare raw counts; the rounded percent can reach 100 early.
	done, total := c.countOn(date, habits), len(habits)
	pct := domain.Percent(done, total)
	switch {
	case done >= total:
		return domain.DayStatusPerfect, pct
	case done*100 >= total*80:
		return domain.DayStatusGreat, pct
	case done*100 >= total*60:
		return domain.DayStatusGood, pct
	case done > 0:
		return domain.DayStatusPartial, pct
	default:
		return domain.DayStatusPoor, pct
	}
}

// MonthCalendar classifies every day of the given month.
func MonthCalendar(year int, month time.Month, habits []*domain.Habit, entries []*domain.Entry, filter *uuid.UUID) []CalendarDay {
	c := index(entries)
	first := domain.Date{Year: year, Month: month, Day: 1}

	out := make([]CalendarDay, 0, 31)
	for d := first; d.Month == month; d = d.AddDays(1) {
		status, pct := classify(d, habits, c, filter)
		out = append(out, CalendarDay{Date: d, Status: status, Percent: pct})
	}
	return out
}
