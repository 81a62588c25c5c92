// Package migration copies the local key-value store into the relational
// backend once. A marker in the local store records a finished run.
package migration

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/store"
)

// DefaultMarkerKey is the local key written after a successful run.
const DefaultMarkerKey = "migratedToDatabase"

type source interface {
	Snapshot(ctx context.Context) (store.Snapshot, error)
	Marker(ctx context.Context, key string) (string, bool, error)
	SetMarker(ctx context.Context, key, value string) error
}

type habitTarget interface {
	List(ctx context.Context, filter domain.HabitFilter) ([]*domain.Habit, error)
	Create(ctx context.Context, habit *domain.Habit) (*domain.Habit, error)
}

type entryTarget interface {
	BulkUpsert(ctx context.Context, in []domain.EntryUpsert) ([]*domain.Entry, error)
}

type settingsTarget interface {
	Save(ctx context.Context, s domain.Settings) error
}

// Outcome is the overall result of a run.
type Outcome string

const (
	OutcomeMigrated         Outcome = "migrated"
	OutcomePartial          Outcome = "partial"
	OutcomeAlreadyMigrated  Outcome = "already_migrated"
	OutcomeNothingToMigrate Outcome = "nothing_to_migrate"
	OutcomeDryRun           Outcome = "dry_run"
)

// Options alter a run.
type Options struct {
	// Force ignores an existing marker.
	Force bool
	// DryRun computes the report without writing anything.
	DryRun bool
}

// Report summarizes a run.
type Report struct {
	Outcome         Outcome
	HabitsCreated   int
	HabitsExisting  int
	EntriesMigrated int
	EntriesSkipped  int
	SettingsCopied  bool
	MarkedAt        *time.Time
	Errors          []string
}

// Service runs the local to relational migration.
type Service struct {
	src       source
	habits    habitTarget
	entries   entryTarget
	settings  settingsTarget
	markerKey string
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Migration service. An empty markerKey means
// DefaultMarkerKey and a nil clock means time.Now.
func NewService(
	log *slog.Logger,
	src source,
	habits habitTarget,
	entries entryTarget,
	settings settingsTarget,
	markerKey string,
	now func() time.Time,
) *Service {
	if markerKey == "" {
		markerKey = DefaultMarkerKey
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		src:       src,
		habits:    habits,
		entries:   entries,
		settings:  settings,
		markerKey: markerKey,
		log:       log.With("service", "migration"),
		now:       now,
	}
}
