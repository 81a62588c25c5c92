// Package store defines the persistence contracts shared by every backend.
// The relational backend lives in internal/adapter/postgres, the local
// key-value backend in internal/adapter/local. Callers pick one at startup
// and never branch on which is active.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// HabitStore owns habit records.
type HabitStore interface {
	Create(ctx context.Context, habit *domain.Habit) (*domain.Habit, error)
	List(ctx context.Context, filter domain.HabitFilter) ([]*domain.Habit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	Update(ctx context.Context, id uuid.UUID, params domain.HabitUpdateParams) (*domain.Habit, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	HardDelete(ctx context.Context, id uuid.UUID) (bool, error)
	ListWithStats(ctx context.Context, filter domain.HabitFilter, since domain.Date) ([]domain.HabitWithStats, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	ExistByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

// EntryStore owns entry records. Every entry references an existing habit.
type EntryStore interface {
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

// SettingsStore persists the single settings document.
// Get returns domain.ErrNotFound when nothing was saved yet.
type SettingsStore interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

// TxManager runs fn atomically where the backend supports it.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pinger reports backend reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Backend bundles one implementation of every store.
type Backend struct {
	Name     string
	Habits   HabitStore
	Entries  EntryStore
	Settings SettingsStore
	Tx       TxManager
	Pinger   Pinger
	Close    func()
}

// Snapshot is every record of a backend read at once. Used by the local
// to relational migration.
type Snapshot struct {
	Habits   []domain.Habit
	Entries  []domain.Entry
	Settings *domain.Settings
}

// IsEmpty reports whether the snapshot holds no habits and no entries.
func (s Snapshot) IsEmpty() bool {
	return len(s.Habits) == 0 && len(s.Entries) == 0
}
