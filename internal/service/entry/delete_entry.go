package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// DeleteEntry removes the entry for (habit, date).
func (s *Service) DeleteEntry(ctx context.Context, input EntryKeyInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	deleted, err := s.entries.Delete(ctx, input.HabitID, input.Date)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if !deleted {
		return fmt.Errorf("delete entry %s/%s: %w", input.HabitID, input.Date, domain.ErrNotFound)
	}

	s.log.DebugContext(ctx, "entry deleted",
		slog.String("habit_id", input.HabitID.String()),
		slog.String("date", input.Date.String()),
	)

	return nil
}
