package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/store"
)

type habitKey struct {
	name     string
	category string
}

// Migrate copies habits, entries and settings from the local store to the target.
// Per-habit failures are collected in Report.Errors and leave the marker unset
// so a later run can retry. Any other failure aborts the run.
func (s *Service) Migrate(ctx context.Context, opts Options) (*Report, error) {
	if !opts.Force {
		value, ok, err := s.src.Marker(ctx, s.markerKey)
		if err != nil {
			return nil, fmt.Errorf("read marker: %w", err)
		}
		if ok {
			s.log.InfoContext(ctx, "migration already done", slog.String("marked_at", value))
			report := &Report{Outcome: OutcomeAlreadyMigrated}
			if t, err := time.Parse(time.RFC3339, value); err == nil {
				report.MarkedAt = &t
			}
			return report, nil
		}
	}

	snap, err := s.src.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("read local data: %w", err)
	}
	if snap.IsEmpty() {
		s.log.InfoContext(ctx, "nothing to migrate")
		return &Report{Outcome: OutcomeNothingToMigrate}, nil
	}

	report := &Report{Outcome: OutcomeMigrated}

	existing, err := s.targetIndex(ctx)
	if err != nil {
		return nil, err
	}

	conflicts, err := s.migrateHabits(ctx, snap.Habits, existing, opts.DryRun, report)
	if err != nil {
		return nil, err
	}

	mapping := make(map[uuid.UUID]uuid.UUID, len(snap.Habits))
	if opts.DryRun {
		for _, h := range snap.Habits {
			mapping[h.ID] = h.ID
		}
	} else {
		if existing, err = s.targetIndex(ctx); err != nil {
			return nil, err
		}
		for _, h := range snap.Habits {
			if id, ok := existing[habitKey{h.Name, h.Category}]; ok {
				mapping[h.ID] = id
			}
		}
		// A create rejected as a duplicate counts as existing only when the
		// target now has the habit under the same category.
		for _, h := range conflicts {
			if _, ok := mapping[h.ID]; ok {
				report.HabitsExisting++
				continue
			}
			report.Errors = append(report.Errors,
				fmt.Sprintf("habit %q: name already used in another category than %q", h.Name, h.Category))
			s.log.WarnContext(ctx, "habit not migrated",
				slog.String("name", h.Name),
				slog.String("category", h.Category),
				slog.String("error", "name conflict"),
			)
		}
	}

	upserts := mapEntries(snap, mapping, report)
	if len(upserts) > 0 && !opts.DryRun {
		saved, err := s.entries.BulkUpsert(ctx, upserts)
		if err != nil {
			return nil, fmt.Errorf("migrate entries: %w", err)
		}
		report.EntriesMigrated = len(saved)
	} else {
		report.EntriesMigrated = len(upserts)
	}

	if snap.Settings != nil {
		if !opts.DryRun {
			if err := s.settings.Save(ctx, *snap.Settings); err != nil {
				return nil, fmt.Errorf("migrate settings: %w", err)
			}
		}
		report.SettingsCopied = true
	}

	switch {
	case opts.DryRun:
		report.Outcome = OutcomeDryRun
	case len(report.Errors) > 0:
		report.Outcome = OutcomePartial
	default:
		now := s.now().UTC().Truncate(time.Second)
		if err := s.src.SetMarker(ctx, s.markerKey, now.Format(time.RFC3339)); err != nil {
			return nil, fmt.Errorf("write marker: %w", err)
		}
		report.MarkedAt = &now
	}

	s.log.InfoContext(ctx, "migration finished",
		slog.String("outcome", string(report.Outcome)),
		slog.Int("habits_created", report.HabitsCreated),
		slog.Int("habits_existing", report.HabitsExisting),
		slog.Int("entries_migrated", report.EntriesMigrated),
		slog.Int("entries_skipped", report.EntriesSkipped),
		slog.Int("errors", len(report.Errors)),
	)

	return report, nil
}

// targetIndex maps (name, category) to the first matching target habit id.
func (s *Service) targetIndex(ctx context.Context) (map[habitKey]uuid.UUID, error) {
	habits, err := s.habits.List(ctx, domain.HabitFilter{})
	if err != nil {
		return nil, fmt.Errorf("list target habits: %w", err)
	}
	idx := make(map[habitKey]uuid.UUID, len(habits))
	for _, h := range habits {
		k := habitKey{h.Name, h.Category}
		if _, ok := idx[k]; !ok {
			idx[k] = h.ID
		}
	}
	return idx, nil
}

// migrateHabits creates the habits missing from the target and returns the
// ones the target rejected as duplicates.
func (s *Service) migrateHabits(ctx context.Context, habits []domain.Habit, existing map[habitKey]uuid.UUID, dryRun bool, report *Report) ([]domain.Habit, error) {
	var conflicts []domain.Habit
	for _, h := range habits {
		k := habitKey{h.Name, h.Category}
		if _, ok := existing[k]; ok {
			report.HabitsExisting++
			continue
		}
		if dryRun {
			existing[k] = h.ID
			report.HabitsCreated++
			continue
		}

		created, err := s.habits.Create(ctx, &domain.Habit{
			Name:        h.Name,
			Description: h.Description,
			Category:    h.Category,
			Color:       h.Color,
			IsActive:    h.IsActive,
		})
		switch {
		case err == nil:
			existing[k] = created.ID
			report.HabitsCreated++
		case errors.Is(err, domain.ErrAlreadyExists):
			conflicts = append(conflicts, h)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		default:
			report.Errors = append(report.Errors, fmt.Sprintf("habit %q: %v", h.Name, err))
			s.log.WarnContext(ctx, "habit not migrated",
				slog.String("name", h.Name),
				slog.String("error", err.Error()),
			)
		}
	}
	return conflicts, nil
}

func mapEntries(snap store.Snapshot, mapping map[uuid.UUID]uuid.UUID, report *Report) []domain.EntryUpsert {
	upserts := make([]domain.EntryUpsert, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		target, ok := mapping[e.HabitID]
		if !ok {
			report.EntriesSkipped++
			continue
		}
		upserts = append(upserts, domain.EntryUpsert{HabitID: target, Date: e.Date, Completed: e.Completed})
	}
	return domain.DedupeUpserts(upserts)
}
