// Package habit implements the habit repository using PostgreSQL.
// Dynamic filters and partial updates are built with squirrel.
package habit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// Repo provides habit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new habit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "name", "description", "category", "color", "is_active", "created_at", "updated_at"}

func prefixed(alias string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a habit by primary key.
// Returns domain.ErrNotFound if the habit does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("habits").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get habit: %w", err)
	}

	h, err := scanHabit(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "habit", id)
	}
	return h, nil
}

// List returns habits matching filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.HabitFilter) ([]*domain.Habit, error) {
	qb := applyFilter(postgres.Builder().Select(columns...).From("habits"), "", filter).
		OrderBy("created_at DESC", "id")

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list habits: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	habits, err := scanHabits(rows)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

// ListWithStats returns habits with entry totals for dates >= since.
func (r *Repo) ListWithStats(ctx context.Context, filter domain.HabitFilter, since domain.Date) ([]domain.HabitWithStats, error) {
	selectCols := append(prefixed("h"),
		"COUNT(e.id) AS total_entries",
		"COUNT(e.id) FILTER (WHERE e.completed) AS completed_entries",
	)

	qb := postgres.Builder().
		Select(selectCols...).
		From("habits h").
		LeftJoin("habit_entries e ON e.habit_id = h.id AND e.date >= ?", since.Time())
	qb = applyFilter(qb, "h.", filter).
		GroupBy("h.id").
		OrderBy("h.created_at DESC", "h.id")

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build habits with stats: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("habits with stats: %w", err)
	}
	defer rows.Close()

	result := []domain.HabitWithStats{}
	for rows.Next() {
		var (
			h                domain.Habit
			total, completed int
		)
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Category, &h.Color, &h.IsActive, &h.CreatedAt, &h.UpdatedAt, &total, &completed); err != nil {
			return nil, fmt.Errorf("habits with stats: %w", err)
		}
		result = append(result, domain.HabitWithStats{
			Habit:            h,
			TotalEntries:     total,
			CompletedEntries: completed,
			CompletionRate:   domain.Percent(completed, total),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habits with stats: %w", err)
	}
	return result, nil
}

const categoriesSQL = `
SELECT category, COUNT(*) AS count
FROM habits
WHERE is_active = true
GROUP BY category
ORDER BY count DESC, category ASC`

// Categories returns the number of active habits per category.
func (r *Repo) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, categoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("habit categories: %w", err)
	}
	defer rows.Close()

	result := []domain.CategoryCount{}
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("habit categories: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habit categories: %w", err)
	}
	return result, nil
}

const existByIDsSQL = `SELECT id FROM habits WHERE id = ANY($1::uuid[])`

// ExistByIDs reports which of ids exist. Every requested id is present in the result.
func (r *Repo) ExistByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	for _, id := range ids {
		result[id] = false
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, existByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("habits exist: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("habits exist: %w", err)
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habits exist: %w", err)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new habit. The database assigns id and timestamps.
// Returns domain.ErrAlreadyExists if a habit with the same name exists.
func (r *Repo) Create(ctx context.Context, habit *domain.Habit) (*domain.Habit, error) {
	sql, args, err := postgres.Builder().
		Insert("habits").
		Columns("name", "description", "category", "color", "is_active").
		Values(habit.Name, habit.Description, habit.Category, habit.Color, habit.IsActive).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create habit: %w", err)
	}

	h, err := scanHabit(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "habit", habit.Name)
	}
	return h, nil
}

// Update applies the non-nil fields of params in a single statement.
// Returns domain.ErrNotFound if the habit does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.HabitUpdateParams) (*domain.Habit, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	ub := postgres.Builder().Update("habits").Where(squirrel.Eq{"id": id})
	if params.Name != nil {
		ub = ub.Set("name", *params.Name)
	}
	if params.Description != nil {
		if *params.Description == "" {
			// ptr("") means clear (set NULL in DB).
			ub = ub.Set("description", nil)
		} else {
			ub = ub.Set("description", *params.Description)
		}
	}
	if params.Category != nil {
		ub = ub.Set("category", *params.Category)
	}
	if params.Color != nil {
		ub = ub.Set("color", *params.Color)
	}
	if params.IsActive != nil {
		ub = ub.Set("is_active", *params.IsActive)
	}

	sql, args, err := ub.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update habit: %w", err)
	}

	h, err := scanHabit(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "habit", id)
	}
	return h, nil
}

var softDeleteSQL = `UPDATE habits SET is_active = false WHERE id = $1 RETURNING ` + strings.Join(columns, ", ")

// SoftDelete marks a habit inactive. Entries are kept.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	h, err := scanHabit(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, softDeleteSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "habit", id)
	}
	return h, nil
}

const hardDeleteSQL = `DELETE FROM habits WHERE id = $1`

// HardDelete removes a habit; ON DELETE CASCADE removes its entries.
// Reports false when the habit did not exist.
func (r *Repo) HardDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, hardDeleteSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "habit", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func applyFilter(qb squirrel.SelectBuilder, prefix string, f domain.HabitFilter) squirrel.SelectBuilder {
	if f.IsActive != nil {
		qb = qb.Where(squirrel.Eq{prefix + "is_active": *f.IsActive})
	}
	if f.Category != nil {
		qb = qb.Where(squirrel.Eq{prefix + "category": *f.Category})
	}
	return qb
}

func scanHabit(row pgx.Row) (*domain.Habit, error) {
	var (
		h         domain.Habit
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Category, &h.Color, &h.IsActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	h.CreatedAt = createdAt.UTC()
	h.UpdatedAt = updatedAt.UTC()
	return &h, nil
}

// scanHabits returns an empty slice (not nil) when there are no rows.
func scanHabits(rows pgx.Rows) ([]*domain.Habit, error) {
	result := []*domain.Habit{}
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
