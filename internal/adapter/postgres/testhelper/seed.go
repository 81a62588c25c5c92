package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedHabit inserts an active habit with a unique name in the given category.
func SeedHabit(t *testing.T, pool *pgxpool.Pool, category string) domain.Habit {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	h := domain.Habit{
		ID:        uuid.New(),
		Name:      "Habit " + uniqueSuffix(),
		Category:  category,
		Color:     "#3B82F6",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO habits (id, name, category, color, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		h.ID, h.Name, h.Category, h.Color, h.IsActive, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHabit: %v", err)
	}
	return h
}

// SeedEntry inserts an entry for habitID on date.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, habitID uuid.UUID, date domain.Date, completed bool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO habit_entries (habit_id, date, completed, completed_at)
		 VALUES ($1, $2, $3, CASE WHEN $3 THEN now() END)`,
		habitID, date.Time(), completed,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}
}
