package migration

import (
	"context"
	"fmt"
	"time"
)

// Status describes whether the local store still needs migrating.
type Status struct {
	Migrated       bool
	MarkedAt       *time.Time
	LocalHabits    int
	LocalEntries   int
	NeedsMigration bool
}

// Status inspects the marker and the local data without writing.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	value, ok, err := s.src.Marker(ctx, s.markerKey)
	if err != nil {
		return nil, fmt.Errorf("read marker: %w", err)
	}
	snap, err := s.src.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("read local data: %w", err)
	}

	st := &Status{
		Migrated:     ok,
		LocalHabits:  len(snap.Habits),
		LocalEntries: len(snap.Entries),
	}
	if t, err := time.Parse(time.RFC3339, value); ok && err == nil {
		st.MarkedAt = &t
	}
	st.NeedsMigration = !ok && !snap.IsEmpty()
	return st, nil
}
