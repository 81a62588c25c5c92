package local

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/store"
)

// Document keys.
const (
	HabitsKey   = "habits"
	EntriesKey  = "habit_entries"
	SettingsKey = "settings"
)

type habitRecord struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type entryRecord struct {
	ID          uuid.UUID   `json:"id"`
	HabitID     uuid.UUID   `json:"habitId"`
	Date        domain.Date `json:"date"`
	Completed   bool        `json:"completed"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func (r habitRecord) toDomain() *domain.Habit {
	h := domain.Habit(r)
	return &h
}

func (r entryRecord) toDomain() *domain.Entry {
	e := domain.Entry(r)
	return &e
}

// Store serializes every read-modify-write of the documents with one mutex.
type Store struct {
	kv  KV
	mu  sync.Mutex
	now func() time.Time
}

// New creates a store over kv. A nil now uses time.Now.
func New(kv KV, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{kv: kv, now: now}
}

// Habits returns the habit store view.
func (s *Store) Habits() *HabitRepo { return &HabitRepo{s: s} }

// Entries returns the entry store view.
func (s *Store) Entries() *EntryRepo { return &EntryRepo{s: s} }

// Settings returns the settings store view.
func (s *Store) Settings() *SettingsRepo { return &SettingsRepo{s: s} }

// Ping reports whether the underlying KV is reachable.
func (s *Store) Ping(ctx context.Context) error { return s.kv.Ping(ctx) }

// RunInTx runs fn directly. The local backend has no transactions; each
// store call is atomic on its own.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

func loadDoc[T any](ctx context.Context, kv KV, key string) ([]T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func saveDoc[T any](ctx context.Context, kv KV, key string, v []T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}

func (s *Store) loadHabits(ctx context.Context) ([]habitRecord, error) {
	return loadDoc[habitRecord](ctx, s.kv, HabitsKey)
}

func (s *Store) saveHabits(ctx context.Context, v []habitRecord) error {
	return saveDoc(ctx, s.kv, HabitsKey, v)
}

func (s *Store) loadEntries(ctx context.Context) ([]entryRecord, error) {
	return loadDoc[entryRecord](ctx, s.kv, EntriesKey)
}

func (s *Store) saveEntries(ctx context.Context, v []entryRecord) error {
	return saveDoc(ctx, s.kv, EntriesKey, v)
}

// ---------------------------------------------------------------------------
// Migration support
// ---------------------------------------------------------------------------

// Snapshot reads all documents at once.
func (s *Store) Snapshot(ctx context.Context) (store.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.loadHabits(ctx)
	if err != nil {
		return store.Snapshot{}, err
	}
	entries, err := s.loadEntries(ctx)
	if err != nil {
		return store.Snapshot{}, err
	}

	snap := store.Snapshot{
		Habits:  make([]domain.Habit, len(habits)),
		Entries: make([]domain.Entry, len(entries)),
	}
	for i, h := range habits {
		snap.Habits[i] = *h.toDomain()
	}
	for i, e := range entries {
		snap.Entries[i] = *e.toDomain()
	}

	settings, err := s.getSettings(ctx)
	switch {
	case err == nil:
		snap.Settings = settings
	case !isNotFound(err):
		return store.Snapshot{}, err
	}
	return snap, nil
}

// Marker returns the value stored under a marker key.
func (s *Store) Marker(ctx context.Context, key string) (string, bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	return string(raw), true, nil
}

// SetMarker stores value under a marker key.
func (s *Store) SetMarker(ctx context.Context, key, value string) error {
	return s.kv.Set(ctx, key, []byte(value))
}
