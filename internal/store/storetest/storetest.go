// Package storetest is a conformance suite run against every store.Backend.
package storetest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/store"
)

// Factory returns a ready backend. Backends may be shared between calls as
// long as habits created by one subtest are invisible to the assertions of
// another; the suite only asserts on habits it created itself.
type Factory func(t *testing.T) store.Backend

// Run executes the suite.
func Run(t *testing.T, newBackend Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, b store.Backend)
	}{
		{"HabitWithoutEntriesHasZeroRate", testZeroRate},
		{"UpsertThenGet", testUpsertThenGet},
		{"ToggleTwiceRestores", testToggleTwice},
		{"UpsertTwiceKeepsOneEntry", testUpsertUnique},
		{"UpsertUnknownHabit", testUpsertUnknownHabit},
		{"SoftDeleteKeepsEntries", testSoftDelete},
		{"HardDeleteCascades", testHardDelete},
		{"BulkUpsertLastWins", testBulkLastWins},
		{"UpdatePartial", testUpdatePartial},
		{"ListByDateRange", testDateRange},
		{"CompletionStats", testCompletionStats},
		{"Export", testExport},
		{"Settings", testSettings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newBackend(t))
		})
	}
}

func createHabit(t *testing.T, b store.Backend) *domain.Habit {
	t.Helper()
	h, err := b.Habits.Create(context.Background(), &domain.Habit{
		Name:     "Habit " + uuid.New().String()[:8],
		Category: "Health",
		Color:    "#3B82F6",
		IsActive: true,
	})
	require.NoError(t, err)
	return h
}

func testZeroRate(t *testing.T, b store.Backend) {
	ctx := context.Background()
	h := createHabit(t, b)

	list, err := b.Habits.ListWithStats(ctx, domain.HabitFilter{}, domain.MustParseDate("2000-01-01"))
	require.NoError(t, err)

	for _, hs := range list {
		if hs.ID == h.ID {
			assert.Equal(t, 0, hs.TotalEntries)
			assert.Equal(t, 0.0, hs.CompletionRate)
			return
		}
	}
	t.Fatalf("habit %s missing from ListWithStats", h.ID)
}

func testUpsertThenGet(t *testing.T, b store.Backend) {
	ctx := context.Background()
	h := createHabit(t, b)
	d := domain.MustParseDate("2024-01-10")

	_, err := b.Entries.Upsert(ctx, domain.EntryUpsert{HabitID: h.ID, Date: d, Completed: true})
	require.NoError(t, err)

	got, err := b.Entries.Get(ctx, h.ID, d)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.NotNil(t, got.CompletedAt)
	assert.Equal(t, d, got.Date)

	_, err = b.Entries.Get(ctx, h.ID, d.AddDays(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testToggleTwice(t *testing.T, b store.Backend) {
	ctx := context.Background()
	h := createHabit(t, b)
	d := domain.MustParseDate("2024-01-10")

	first, err := b.Entries.Toggle(ctx, h.ID, d)
	require.NoError(t, err)
	assert.True(t, first.Completed, "toggle of absent entry completes it")

	second, err := b.Entries.Toggle(ctx, h.ID, d)
	require.NoError(t, err)
	assert.False(t, second.Completed)
	assert.Nil(t, second.CompletedAt)

	third, err := b.Entries.Toggle(ctx, h.ID, d)
	require.NoError(t, err)
	assert.Equal(t, first.Completed, third.Completed)
}

func testUpsertUnique(t *testing.T, b store.Backend) {
	ctx := context.Background()
	h := createHabit(t, b)
	d := domain.MustParseDate("2024-01-10")

	_, err := b.Entries.Upsert(ctx, domain.EntryUpsert{HabitID: h.ID, Date: d, Completed: true})
	require.NoError(t, err)
	_, err = b.Entries.Upsert(ctx, domain.EntryUpsert{HabitID: h.ID, Date: d, Completed: false})
	require.NoError(t, err)

	list, err := b.Entries.ListByHabit(ctx, h.ID, domain.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Completed)
	assert.Nil(t, list[0].CompletedAt)
}

func testUpsertUnknownHabit(t *testing.T, b store.Backend) {
	_, err := b.Entries.Upsert(context.Background(), domain.EntryUpsert{
		HabitID:   uuid.New(),
		Date:      domain.MustParseDate("2024-01-10"),
		Completed: true,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testSoftDelete(t *testing.T, b store.Backend) {
	ctx := context.Background()
	h := createHabit(t, b)
	d := domain.MustParseDate("2024-01-10")

	_, err := b.Entries.Upsert(ctx, domain.EntryUpsert{HabitID: h.ID, Date: d, Completed: true})
	require.NoError(t, err)

	deleted, err := b.Habits.SoftDelete(ctx, h.ID)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive)

	active := true
	list, err := b.Habits.List(ctx, domain.HabitFilter{IsActive: &active})
	require.NoError(t, err)
	for _, got := range list {
		assert.NotEqual(t, h.ID, got.ID, "soft-deleted habit listed as active")
	}

	entries, err := b.Entries.ListByHabit(ctx, h.ID, domain.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Completed)

	_, err = b.Habits.SoftDelete(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testHardDelete(t *testing.T, b store.Backend) {
	ctx := context.Background()
	h := createHabit(t, b)

	_, err := b.Entries.Upsert(ctx, domain.EntryUpsert{HabitID: h.ID, Date: domain.MustParseDate("2024-01-10"), Completed: true})
	require.NoError(t, err)

	ok, err := b.Habits.HardDelete(ctx, h.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	entries, err := b.Entries.ListByHabit(ctx, h.ID, domain.EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)

	ok, err = b.Habits.HardDelete(ctx, h.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testBulkLastWins(t *testing.T, b store.Backend) {
	ctx := context.Background()
	h := createHabit(t, b)
	d := domain.MustParseDate("2024-01-01")

	_, err := b.Entries.BulkUpsert(ctx, []domain.EntryUpsert{
		{HabitID: h.ID, Date: d, Completed: true},
		{HabitID: h.ID, Date: d, Completed: false},
	})
	require.NoError(t, err)

	list, err := b.Entries.ListByHabit(ctx, h.ID, domain.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Completed)
}

func testUpdatePartial(t *testing.T, b store.Backend) {
	ctx := context.Background()
	h := createHabit(t, b)

	desc := "daily"
	got, err := b.Habits.Update(ctx, h.ID, domain.HabitUpdateParams{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, h.Name, got.Name)
	assert.Equal(t, h.Color, got.Color)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)

	_, err = b.Habits.Update(ctx, uuid.New(), domain.HabitUpdateParams{Description: &desc})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testDateRange(t *testing.T, b store.Backend) {
	ctx := context.Background()
	h := createHabit(t, b)

	for _, s := range []string{"2024-01-01", "2024-01-05", "2024-01-10", "2024-01-11"} {
		_, err := b.Entries.Upsert(ctx, domain.EntryUpsert{HabitID: h.ID, Date: domain.MustParseDate(s), Completed: true})
		require.NoError(t, err)
	}

	got, err := b.Entries.ListByDateRange(ctx, domain.MustParseDate("2024-01-01"), domain.MustParseDate("2024-01-10"), []uuid.UUID{h.ID})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-10", got[0].Date.String())
	assert.Equal(t, "2024-01-01", got[2].Date.String())

	start := domain.MustParseDate("2024-01-05")
	done := true
	filtered, err := b.Entries.ListByHabit(ctx, h.ID, domain.EntryFilter{StartDate: &start, Completed: &done})
	require.NoError(t, err)
	assert.Len(t, filtered, 3)
}

func testCompletionStats(t *testing.T, b store.Backend) {
	ctx := context.Background()
	h := createHabit(t, b)

	for s, c := range map[string]bool{"2024-01-01": true, "2024-01-02": false, "2024-01-03": true} {
		_, err := b.Entries.Upsert(ctx, domain.EntryUpsert{HabitID: h.ID, Date: domain.MustParseDate(s), Completed: c})
		require.NoError(t, err)
	}

	stats, err := b.Entries.CompletionStats(ctx, h.ID, domain.MustParseDate("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalDays)
	assert.Equal(t, 2, stats.CompletedDays)
	assert.Equal(t, 66.67, stats.CompletionRate)
	require.NotNil(t, stats.LastCompletedDate)
	assert.Equal(t, "2024-01-03", stats.LastCompletedDate.String())
}

func testExport(t *testing.T, b store.Backend) {
	ctx := context.Background()
	h := createHabit(t, b)

	_, err := b.Entries.Upsert(ctx, domain.EntryUpsert{HabitID: h.ID, Date: domain.MustParseDate("2024-01-10"), Completed: true})
	require.NoError(t, err)

	rows, err := b.Entries.Export(ctx, []uuid.UUID{h.ID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, h.Name, rows[0].HabitName)
	assert.Equal(t, h.Category, rows[0].HabitCategory)
}

func testSettings(t *testing.T, b store.Backend) {
	ctx := context.Background()

	s := domain.DefaultSettings()
	s.Theme = domain.ThemeDark
	s.AI.MaxSuggestions = 3
	require.NoError(t, b.Settings.Save(ctx, s))

	got, err := b.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, *got)
}
