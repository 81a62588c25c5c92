package local

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// EntryRepo implements the entry store over the "habit_entries" document.
type EntryRepo struct {
	s *Store
}

func entryNotFound(habitID uuid.UUID, date domain.Date) error {
	return fmt.Errorf("habit_entry %s/%s: %w", habitID, date, domain.ErrNotFound)
}

// byDateDesc orders entries newest date first, then habit id.
func byDateDesc(a, b entryRecord) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return strings.Compare(a.HabitID.String(), b.HabitID.String())
}

func indexOf(entries []entryRecord, habitID uuid.UUID, date domain.Date) int {
	return slices.IndexFunc(entries, func(e entryRecord) bool {
		return e.HabitID == habitID && e.Date == date
	})
}

func (r *EntryRepo) habitIDs(ctx context.Context) (map[uuid.UUID]struct{}, error) {
	habits, err := r.s.loadHabits(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[uuid.UUID]struct{}, len(habits))
	for _, h := range habits {
		ids[h.ID] = struct{}{}
	}
	return ids, nil
}

// apply writes u into entries in place and returns the index of the row.
func (r *EntryRepo) apply(entries []entryRecord, u domain.EntryUpsert) ([]entryRecord, int) {
	now := r.s.timestamp()

	i := indexOf(entries, u.HabitID, u.Date)
	if i < 0 {
		entries = append(entries, entryRecord{
			ID:        uuid.New(),
			HabitID:   u.HabitID,
			Date:      u.Date,
			CreatedAt: now,
		})
		i = len(entries) - 1
	}
	entries[i].Completed = u.Completed
	if u.Completed {
		entries[i].CompletedAt = &now
	} else {
		entries[i].CompletedAt = nil
	}
	return entries, i
}

func (r *EntryRepo) Upsert(ctx context.Context, in domain.EntryUpsert) (*domain.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	known, err := r.habitIDs(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := known[in.HabitID]; !ok {
		return nil, notFound(in.HabitID)
	}

	entries, err := r.s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}
	entries, i := r.apply(entries, in)

	if err := r.s.saveEntries(ctx, entries); err != nil {
		return nil, err
	}
	return entries[i].toDomain(), nil
}

// Toggle completes an absent or incomplete entry and clears a completed one.
func (r *EntryRepo) Toggle(ctx context.Context, habitID uuid.UUID, date domain.Date) (*domain.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	known, err := r.habitIDs(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := known[habitID]; !ok {
		return nil, notFound(habitID)
	}

	entries, err := r.s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	completed := true
	if i := indexOf(entries, habitID, date); i >= 0 {
		completed = !entries[i].Completed
	}
	entries, i := r.apply(entries, domain.EntryUpsert{HabitID: habitID, Date: date, Completed: completed})

	if err := r.s.saveEntries(ctx, entries); err != nil {
		return nil, err
	}
	return entries[i].toDomain(), nil
}

func (r *EntryRepo) Get(ctx context.Context, habitID uuid.UUID, date domain.Date) (*domain.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries, err := r.s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(entries, habitID, date)
	if i < 0 {
		return nil, entryNotFound(habitID, date)
	}
	return entries[i].toDomain(), nil
}

func (r *EntryRepo) ListByHabit(ctx context.Context, habitID uuid.UUID, filter domain.EntryFilter) ([]*domain.Entry, error) {
	return r.list(ctx, func(e entryRecord) bool {
		if e.HabitID != habitID {
			return false
		}
		if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
			return false
		}
		if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
			return false
		}
		if filter.Completed != nil && e.Completed != *filter.Completed {
			return false
		}
		return true
	})
}

func (r *EntryRepo) ListByDateRange(ctx context.Context, start, end domain.Date, habitIDs []uuid.UUID) ([]*domain.Entry, error) {
	return r.list(ctx, func(e entryRecord) bool {
		if e.Date.Before(start) || e.Date.After(end) {
			return false
		}
		return len(habitIDs) == 0 || slices.Contains(habitIDs, e.HabitID)
	})
}

func (r *EntryRepo) list(ctx context.Context, keep func(entryRecord) bool) ([]*domain.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries, err := r.s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(entries, byDateDesc)

	out := []*domain.Entry{}
	for _, e := range entries {
		if keep(e) {
			out = append(out, e.toDomain())
		}
	}
	return out, nil
}

// BulkUpsert applies each upsert independently. Upserts for unknown habits
// are skipped; the last upsert for a key wins.
func (r *EntryRepo) BulkUpsert(ctx context.Context, in []domain.EntryUpsert) ([]*domain.Entry, error) {
	in = domain.DedupeUpserts(in)
	if len(in) == 0 {
		return []*domain.Entry{}, nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	known, err := r.habitIDs(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := r.s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	written := make([]int, 0, len(in))
	for _, u := range in {
		if _, ok := known[u.HabitID]; !ok {
			continue
		}
		var i int
		entries, i = r.apply(entries, u)
		written = append(written, i)
	}

	if err := r.s.saveEntries(ctx, entries); err != nil {
		return nil, err
	}

	out := make([]*domain.Entry, len(written))
	for j, i := range written {
		out[j] = entries[i].toDomain()
	}
	return out, nil
}

func (r *EntryRepo) Delete(ctx context.Context, habitID uuid.UUID, date domain.Date) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries, err := r.s.loadEntries(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf(entries, habitID, date)
	if i < 0 {
		return false, nil
	}
	entries = slices.Delete(entries, i, i+1)

	if err := r.s.saveEntries(ctx, entries); err != nil {
		return false, err
	}
	return true, nil
}

func (r *EntryRepo) CompletionStats(ctx context.Context, habitID uuid.UUID, since domain.Date) (domain.CompletionStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries, err := r.s.loadEntries(ctx)
	if err != nil {
		return domain.CompletionStats{}, err
	}

	var stats domain.CompletionStats
	for _, e := range entries {
		if e.HabitID != habitID || e.Date.Before(since) {
			continue
		}
		stats.TotalDays++
		if !e.Completed {
			continue
		}
		stats.CompletedDays++
		if stats.LastCompletedDate == nil || e.Date.After(*stats.LastCompletedDate) {
			d := e.Date
			stats.LastCompletedDate = &d
		}
	}
	stats.CompletionRate = domain.Percent(stats.CompletedDays, stats.TotalDays)
	return stats, nil
}

// Export joins entries with their habit. Entries of unknown habits are dropped.
func (r *EntryRepo) Export(ctx context.Context, habitIDs []uuid.UUID) ([]domain.ExportRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	habits, err := r.s.loadHabits(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := r.s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]habitRecord, len(habits))
	for _, h := range habits {
		byID[h.ID] = h
	}

	out := []domain.ExportRow{}
	for _, e := range entries {
		h, ok := byID[e.HabitID]
		if !ok || (len(habitIDs) > 0 && !slices.Contains(habitIDs, e.HabitID)) {
			continue
		}
		out = append(out, domain.ExportRow{Entry: *e.toDomain(), HabitName: h.Name, HabitCategory: h.Category})
	}
	slices.SortStableFunc(out, func(a, b domain.ExportRow) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.HabitName, b.HabitName)
	})
	return out, nil
}
