package entry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

type entryRepo interface {
	Upsert(ctx context.Context, in domain.EntryUpsert) (*domain.Entry, error)
	Toggle(ctx context.Context, habitID uuid.UUID, date domain.Date) (*domain.Entry, error)
	Get(ctx context.Context, habitID uuid.UUID, date domain.Date) (*domain.Entry, error)
	ListByHabit(ctx context.Context, habitID uuid.UUID, filter domain.EntryFilter) ([]*domain.Entry, error)
	ListByDateRange(ctx context.Context, start, end domain.Date, habitIDs []uuid.UUID) ([]*domain.Entry, error)
	BulkUpsert(ctx context.Context, in []domain.EntryUpsert) ([]*domain.Entry, error)
	Delete(ctx context.Context, habitID uuid.UUID, date domain.Date) (bool, error)
	CompletionStats(ctx context.Context, habitID uuid.UUID, since domain.Date) (domain.CompletionStats, error)
	Export(ctx context.Context, habitIDs []uuid.UUID) ([]domain.ExportRow, error)
}

type habitRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	ExistByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

const (
	// DefaultStatsDays is the stats window when the caller gives none.
	DefaultStatsDays = 30
	// MaxStatsDays bounds the stats window.
	MaxStatsDays = 365
	// MaxBulkEntries caps a single bulk upsert.
	MaxBulkEntries = 1000
)

// Service provides entry operations. Every write checks that its habits exist.
type Service struct {
	entries entryRepo
	habits  habitRepo
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Entry service. A nil clock means time.Now.
func NewService(log *slog.Logger, entries entryRepo, habits habitRepo, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		entries: entries,
		habits:  habits,
		log:     log.With("service", "entry"),
		now:     now,
	}
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now())
}

// requireHabits returns a *domain.MissingHabitsError listing ids with no habit.
func (s *Service) requireHabits(ctx context.Context, ids ...uuid.UUID) error {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	exists, err := s.habits.ExistByIDs(ctx, unique)
	if err != nil {
		return fmt.Errorf("check habits: %w", err)
	}

	var missing []uuid.UUID
	for _, id := range unique {
		if !exists[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &domain.MissingHabitsError{IDs: missing}
	}
	return nil
}
