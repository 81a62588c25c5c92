package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// UpsertEntry creates or replaces the entry for (habit, date).
func (s *Service) UpsertEntry(ctx context.Context, input UpsertEntryInput) (*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireHabits(ctx, input.HabitID); err != nil {
		return nil, err
	}

	entry, err := s.entries.Upsert(ctx, input.upsert())
	if err != nil {
		return nil, fmt.Errorf("upsert entry: %w", err)
	}

	s.log.DebugContext(ctx, "entry saved",
		slog.String("habit_id", entry.HabitID.String()),
		slog.String("date", entry.Date.String()),
		slog.Bool("completed", entry.Completed),
	)

	return entry, nil
}

// ToggleEntry flips the completion state. A missing entry becomes completed.
func (s *Service) ToggleEntry(ctx context.Context, input EntryKeyInput) (*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireHabits(ctx, input.HabitID); err != nil {
		return nil, err
	}

	entry, err := s.entries.Toggle(ctx, input.HabitID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("toggle entry: %w", err)
	}

	s.log.DebugContext(ctx, "entry toggled",
		slog.String("habit_id", entry.HabitID.String()),
		slog.String("date", entry.Date.String()),
		slog.Bool("completed", entry.Completed),
	)

	return entry, nil
}

// BulkUpsert writes many entries after checking every referenced habit exists.
// Unknown habits fail the whole request with a *domain.MissingHabitsError.
func (s *Service) BulkUpsert(ctx context.Context, input BulkUpsertInput) ([]*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(input.Entries))
	upserts := make([]domain.EntryUpsert, len(input.Entries))
	for i, e := range input.Entries {
		ids[i] = e.HabitID
		upserts[i] = e.upsert()
	}
	if err := s.requireHabits(ctx, ids...); err != nil {
		return nil, err
	}

	saved, err := s.entries.BulkUpsert(ctx, upserts)
	if err != nil {
		return nil, fmt.Errorf("bulk upsert entries: %w", err)
	}

	s.log.InfoContext(ctx, "entries bulk saved",
		slog.Int("requested", len(upserts)),
		slog.Int("saved", len(saved)),
	)

	return saved, nil
}
