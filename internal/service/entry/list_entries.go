package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// ListEntries returns entries of one habit, or of all habits within a date range.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.HabitID != nil {
		entries, err := s.entries.ListByHabit(ctx, *input.HabitID, input.filter())
		if err != nil {
			return nil, fmt.Errorf("list entries by habit: %w", err)
		}
		return entries, nil
	}

	entries, err := s.entries.ListByDateRange(ctx, *input.StartDate, *input.EndDate, input.HabitIDs)
	if err != nil {
		return nil, fmt.Errorf("list entries by range: %w", err)
	}
	return entries, nil
}

// ListHabitEntries returns the entries of one existing habit, newest first.
func (s *Service) ListHabitEntries(ctx context.Context, input HabitEntriesInput) ([]*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireHabits(ctx, input.HabitID); err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByHabit(ctx, input.HabitID, domain.EntryFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Completed: input.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("list habit entries: %w", err)
	}
	return entries, nil
}

// Export returns entries joined with their habit, optionally limited to habitIDs.
func (s *Service) Export(ctx context.Context, habitIDs []uuid.UUID) ([]domain.ExportRow, error) {
	rows, err := s.entries.Export(ctx, habitIDs)
	if err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}

	s.log.InfoContext(ctx, "entries exported", slog.Int("rows", len(rows)))

	return rows, nil
}
