// Package stats serves dashboard analytics computed from a snapshot of
// habits and entries loaded for the requested window.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

type habitRepo interface {
	List(ctx context.Context, filter domain.HabitFilter) ([]*domain.Habit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
}

type entryRepo interface {
	ListByDateRange(ctx context.Context, start, end domain.Date, habitIDs []uuid.UUID) ([]*domain.Entry, error)
}

const (
	// DefaultWindowDays is the trend window used when the request names none.
	DefaultWindowDays = 30
	// MaxWindowDays caps the trend window a caller may ask for.
	MaxWindowDays = 365
)

// Service computes analytics over the active backend.
type Service struct {
	habits  habitRepo
	entries entryRepo
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Stats service. A nil clock means time.Now.
func NewService(log *slog.Logger, habits habitRepo, entries entryRepo, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		habits:  habits,
		entries: entries,
		log:     log.With("service", "stats"),
		now:     now,
	}
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now())
}

func (s *Service) activeHabits(ctx context.Context) ([]*domain.Habit, error) {
	active := true
	return s.habits.List(ctx, domain.HabitFilter{IsActive: &active})
}
