package habit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

type habitRepo interface {
	Create(ctx context.Context, habit *domain.Habit) (*domain.Habit, error)
	List(ctx context.Context, filter domain.HabitFilter) ([]*domain.Habit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	Update(ctx context.Context, id uuid.UUID, params domain.HabitUpdateParams) (*domain.Habit, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	HardDelete(ctx context.Context, id uuid.UUID) (bool, error)
	ListWithStats(ctx context.Context, filter domain.HabitFilter, since domain.Date) ([]domain.HabitWithStats, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	// StatsWindowDays is the trailing window used by ListHabits with stats.
	StatsWindowDays = 30
	// MaxBulkHabits caps a single bulk create.
	MaxBulkHabits = 100
)

// Service provides habit management operations.
type Service struct {
	habits habitRepo
	tx     txManager
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new Habit service. A nil clock means time.Now.
func NewService(log *slog.Logger, habits habitRepo, tx txManager, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		habits: habits,
		tx:     tx,
		log:    log.With("service", "habit"),
		now:    now,
	}
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now())
}
