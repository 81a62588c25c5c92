package local

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// HabitRepo implements the habit store over the "habits" document.
type HabitRepo struct {
	s *Store
}

func isNotFound(err error) bool { return errors.Is(err, domain.ErrNotFound) }

func notFound(id uuid.UUID) error {
	return fmt.Errorf("habit %s: %w", id, domain.ErrNotFound)
}

// The local backend only knows the standard categories.
func checkCategory(c string) error {
	if !domain.IsStandardCategory(c) {
		return domain.NewValidationError("category", "must be one of "+strings.Join(domain.StandardCategories, ", "))
	}
	return nil
}

func matches(h habitRecord, f domain.HabitFilter) bool {
	if f.IsActive != nil && h.IsActive != *f.IsActive {
		return false
	}
	if f.Category != nil && h.Category != *f.Category {
		return false
	}
	return true
}

// newestFirst orders by creation time descending, then id for stability.
func newestFirst(a, b habitRecord) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}

func (r *HabitRepo) Create(ctx context.Context, habit *domain.Habit) (*domain.Habit, error) {
	if err := checkCategory(habit.Category); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	habits, err := r.s.loadHabits(ctx)
	if err != nil {
		return nil, err
	}

	now := r.s.timestamp()
	rec := habitRecord{
		ID:          uuid.New(),
		Name:        habit.Name,
		Description: habit.Description,
		Category:    habit.Category,
		Color:       habit.Color,
		IsActive:    habit.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	habits = append(habits, rec)

	if err := r.s.saveHabits(ctx, habits); err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *HabitRepo) List(ctx context.Context, filter domain.HabitFilter) ([]*domain.Habit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	habits, err := r.s.loadHabits(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(habits, newestFirst)

	out := []*domain.Habit{}
	for _, h := range habits {
		if matches(h, filter) {
			out = append(out, h.toDomain())
		}
	}
	return out, nil
}

func (r *HabitRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	habits, err := r.s.loadHabits(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(habits, func(h habitRecord) bool { return h.ID == id })
	if i < 0 {
		return nil, notFound(id)
	}
	return habits[i].toDomain(), nil
}

func (r *HabitRepo) Update(ctx context.Context, id uuid.UUID, params domain.HabitUpdateParams) (*domain.Habit, error) {
	if params.Category != nil {
		if err := checkCategory(*params.Category); err != nil {
			return nil, err
		}
	}
	return r.modify(ctx, id, func(h domain.Habit) domain.Habit { return params.Apply(h) })
}

func (r *HabitRepo) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	return r.modify(ctx, id, func(h domain.Habit) domain.Habit {
		h.IsActive = false
		return h
	})
}

func (r *HabitRepo) modify(ctx context.Context, id uuid.UUID, fn func(domain.Habit) domain.Habit) (*domain.Habit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	habits, err := r.s.loadHabits(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(habits, func(h habitRecord) bool { return h.ID == id })
	if i < 0 {
		return nil, notFound(id)
	}

	next := habitRecord(fn(*habits[i].toDomain()))
	next.ID = habits[i].ID
	next.CreatedAt = habits[i].CreatedAt
	next.UpdatedAt = r.s.timestamp()
	habits[i] = next

	if err := r.s.saveHabits(ctx, habits); err != nil {
		return nil, err
	}
	return next.toDomain(), nil
}

// HardDelete removes the habit and its entries. Entries are written first so
// a failure never leaves entries pointing at a missing habit.
func (r *HabitRepo) HardDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	habits, err := r.s.loadHabits(ctx)
	if err != nil {
		return false, err
	}
	before := len(habits)
	habits = slices.DeleteFunc(habits, func(h habitRecord) bool { return h.ID == id })
	if len(habits) == before {
		return false, nil
	}

	entries, err := r.s.loadEntries(ctx)
	if err != nil {
		return false, err
	}
	entries = slices.DeleteFunc(entries, func(e entryRecord) bool { return e.HabitID == id })

	if err := r.s.saveEntries(ctx, entries); err != nil {
		return false, err
	}
	if err := r.s.saveHabits(ctx, habits); err != nil {
		return false, err
	}
	return true, nil
}

// ListWithStats counts entries with date >= since per matching habit.
func (r *HabitRepo) ListWithStats(ctx context.Context, filter domain.HabitFilter, since domain.Date) ([]domain.HabitWithStats, error) {
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

	type counts struct{ total, completed int }
	byHabit := make(map[uuid.UUID]counts)
	for _, e := range entries {
		if e.Date.Before(since) {
			continue
		}
		c := byHabit[e.HabitID]
		c.total++
		if e.Completed {
			c.completed++
		}
		byHabit[e.HabitID] = c
	}

	slices.SortStableFunc(habits, newestFirst)
	out := []domain.HabitWithStats{}
	for _, h := range habits {
		if !matches(h, filter) {
			continue
		}
		c := byHabit[h.ID]
		out = append(out, domain.HabitWithStats{
			Habit:            *h.toDomain(),
			TotalEntries:     c.total,
			CompletedEntries: c.completed,
			CompletionRate:   domain.Percent(c.completed, c.total),
		})
	}
	return out, nil
}

// Categories counts active habits per category, count desc then name asc.
func (r *HabitRepo) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	habits, err := r.s.loadHabits(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, h := range habits {
		if h.IsActive {
			counts[h.Category]++
		}
	}

	out := make([]domain.CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, domain.CategoryCount{Category: c, Count: n})
	}
	slices.SortFunc(out, func(a, b domain.CategoryCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Category, b.Category)
	})
	return out, nil
}

func (r *HabitRepo) ExistByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	habits, err := r.s.loadHabits(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[uuid.UUID]struct{}, len(habits))
	for _, h := range habits {
		known[h.ID] = struct{}{}
	}
	out := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		_, ok := known[id]
		out[id] = ok
	}
	return out, nil
}
