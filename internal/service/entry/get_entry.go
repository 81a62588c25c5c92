package entry

import (
	"context"
	"fmt"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// GetEntry returns the entry for (habit, date) or domain.ErrNotFound.
func (s *Service) GetEntry(ctx context.Context, input EntryKeyInput) (*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.Get(ctx, input.HabitID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}
