package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single day's completion record for one habit.
// At most one entry exists per (HabitID, Date).
type Entry struct {
	ID          uuid.UUID
	HabitID     uuid.UUID
	Date        Date
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// EntryUpsert is the write model for an entry keyed by (HabitID, Date).
type EntryUpsert struct {
	HabitID   uuid.UUID
	Date      Date
	Completed bool
}

// EntryKey identifies an entry.
type EntryKey struct {
	HabitID uuid.UUID
	Date    Date
}

// Key returns the uniqueness key of the upsert.
func (u EntryUpsert) Key() EntryKey {
	return EntryKey{HabitID: u.HabitID, Date: u.Date}
}

// DedupeUpserts collapses upserts sharing a key, keeping the last one.
// The relative order of the surviving upserts follows their last occurrence.
func DedupeUpserts(in []EntryUpsert) []EntryUpsert {
	last := make(map[EntryKey]int, len(in))
	for i, u := range in {
		last[u.Key()] = i
	}
	out := make([]EntryUpsert, 0, len(last))
	for i, u := range in {
		if last[u.Key()] == i {
			out = append(out, u)
		}
	}
	return out
}

// CompletionStats summarizes a habit's entries over a trailing window.
type CompletionStats struct {
	TotalDays         int
	CompletedDays     int
	CompletionRate    float64
	LastCompletedDate *Date
}

// ExportRow is an entry joined with its habit for export.
type ExportRow struct {
	Entry
	HabitName     string
	HabitCategory string
}
