package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// GetHabit returns a habit by id.
func (s *Service) GetHabit(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	habit, err := s.habits.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get habit: %w", err)
	}
	return habit, nil
}
