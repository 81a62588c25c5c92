// Package analytics derives streaks and aggregates from habit and entry
// snapshots. Every function is pure: it reads its arguments, never mutates
// them, and keeps no state between calls. Zero denominators yield 0.
package analytics

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// DefaultLookbackDays bounds streak scans and default windows.
const DefaultLookbackDays = 30

// DefaultWeeks is the default number of weekly trend buckets.
const DefaultWeeks = 4

// completions indexes completed entries by (habit, date).
type completions map[domain.EntryKey]struct{}

func index(entries []*domain.Entry) completions {
	c := make(completions, len(entries))
	for _, e := range entries {
		if e.Completed {
			c[domain.EntryKey{HabitID: e.HabitID, Date: e.Date}] = struct{}{}
		}
	}
	return c
}

func (c completions) done(habitID uuid.UUID, d domain.Date) bool {
	_, ok := c[domain.EntryKey{HabitID: habitID, Date: d}]
	return ok
}

// countOn returns how many of habits have a completed entry on d.
func (c completions) countOn(d domain.Date, habits []*domain.Habit) int {
	n := 0
	for _, h := range habits {
		if c.done(h.ID, d) {
			n++
		}
	}
	return n
}

// ActiveOnly returns the active habits of habits, in order.
func ActiveOnly(habits []*domain.Habit) []*domain.Habit {
	out := make([]*domain.Habit, 0, len(habits))
	for _, h := range habits {
		if h.IsActive {
			out = append(out, h)
		}
	}
	return out
}
