// Package entry implements the habit entry repository using PostgreSQL.
// Every write is an upsert keyed by (habit_id, date) and relies on the
// habit_entries_habit_date_key constraint; no read-then-write races.
package entry

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

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "habit_id", "date", "completed", "completed_at", "created_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

func entryKey(habitID uuid.UUID, date domain.Date) string {
	return habitID.String() + "/" + date.String()
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const upsertSuffix = `ON CONFLICT (habit_id, date) DO UPDATE
SET completed = EXCLUDED.completed,
    completed_at = EXCLUDED.completed_at`

func completedAtExpr(completed bool) squirrel.Sqlizer {
	return squirrel.Expr("CASE WHEN ?::boolean THEN now() END", completed)
}

// Upsert creates or replaces the entry for (habit, date).
// Returns domain.ErrNotFound if the habit does not exist.
func (r *Repo) Upsert(ctx context.Context, in domain.EntryUpsert) (*domain.Entry, error) {
	sql, args, err := postgres.Builder().
		Insert("habit_entries").
		Columns("habit_id", "date", "completed", "completed_at").
		Values(in.HabitID, in.Date.Time(), in.Completed, completedAtExpr(in.Completed)).
		Suffix(upsertSuffix + "\n" + returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert entry: %w", err)
	}

	e, err := scanEntry(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "habit_entry", entryKey(in.HabitID, in.Date))
	}
	return e, nil
}

var toggleSQL = `
INSERT INTO habit_entries AS e (habit_id, date, completed, completed_at)
VALUES ($1, $2, true, now())
ON CONFLICT (habit_id, date) DO UPDATE
SET completed = NOT e.completed,
    completed_at = CASE WHEN e.completed THEN NULL ELSE now() END
` + returning

// Toggle flips the completion of (habit, date) in one statement.
// An absent entry becomes completed.
func (r *Repo) Toggle(ctx context.Context, habitID uuid.UUID, date domain.Date) (*domain.Entry, error) {
	e, err := scanEntry(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, toggleSQL, habitID, date.Time()))
	if err != nil {
		return nil, postgres.MapError(err, "habit_entry", entryKey(habitID, date))
	}
	return e, nil
}

var bulkUpsertSQL = `
INSERT INTO habit_entries (habit_id, date, completed, completed_at)
SELECT u.habit_id, u.date, u.completed, CASE WHEN u.completed THEN now() END
FROM unnest($1::uuid[], $2::date[], $3::boolean[]) AS u(habit_id, date, completed)
` + upsertSuffix + "\n" + returning

// BulkUpsert writes all entries in a single statement: either every row is
// written or none is. Rows travel as three column arrays, so the statement
// has three bind parameters regardless of the batch size. Duplicate keys
// collapse to the last occurrence, since ON CONFLICT cannot touch the same
// row twice in one command.
func (r *Repo) BulkUpsert(ctx context.Context, in []domain.EntryUpsert) ([]*domain.Entry, error) {
	in = domain.DedupeUpserts(in)
	if len(in) == 0 {
		return []*domain.Entry{}, nil
	}

	habitIDs := make([]uuid.UUID, len(in))
	dates := make([]time.Time, len(in))
	completed := make([]bool, len(in))
	for i, u := range in {
		habitIDs[i] = u.HabitID
		dates[i] = u.Date.Time()
		completed[i] = u.Completed
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, bulkUpsertSQL, habitIDs, dates, completed)
	if err != nil {
		return nil, postgres.MapError(err, "habit_entry", fmt.Sprintf("bulk(%d)", len(in)))
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, postgres.MapError(err, "habit_entry", fmt.Sprintf("bulk(%d)", len(in)))
	}
	return entries, nil
}

const deleteSQL = `DELETE FROM habit_entries WHERE habit_id = $1 AND date = $2`

// Delete removes the entry for (habit, date). Reports false when absent.
func (r *Repo) Delete(ctx context.Context, habitID uuid.UUID, date domain.Date) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, habitID, date.Time())
	if err != nil {
		return false, postgres.MapError(err, "habit_entry", entryKey(habitID, date))
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the entry for (habit, date).
// Returns domain.ErrNotFound when no entry was recorded.
func (r *Repo) Get(ctx context.Context, habitID uuid.UUID, date domain.Date) (*domain.Entry, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("habit_entries").
		Where(squirrel.Eq{"habit_id": habitID, "date": date.Time()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get entry: %w", err)
	}

	e, err := scanEntry(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "habit_entry", entryKey(habitID, date))
	}
	return e, nil
}

// ListByHabit returns a habit's entries, newest date first.
func (r *Repo) ListByHabit(ctx context.Context, habitID uuid.UUID, filter domain.EntryFilter) ([]*domain.Entry, error) {
	qb := postgres.Builder().
		Select(columns...).
		From("habit_entries").
		Where(squirrel.Eq{"habit_id": habitID})
	qb = applyFilter(qb, filter).OrderBy("date DESC")

	return r.list(ctx, qb, "list entries by habit")
}

// ListByDateRange returns entries with start <= date <= end, optionally
// restricted to habitIDs. Ordered by date desc, then habit id.
func (r *Repo) ListByDateRange(ctx context.Context, start, end domain.Date, habitIDs []uuid.UUID) ([]*domain.Entry, error) {
	qb := postgres.Builder().
		Select(columns...).
		From("habit_entries").
		Where(squirrel.GtOrEq{"date": start.Time()}).
		Where(squirrel.LtOrEq{"date": end.Time()})
	if len(habitIDs) > 0 {
		qb = qb.Where(squirrel.Eq{"habit_id": habitIDs})
	}
	qb = qb.OrderBy("date DESC", "habit_id")

	return r.list(ctx, qb, "list entries by date range")
}

func (r *Repo) list(ctx context.Context, qb squirrel.SelectBuilder, op string) ([]*domain.Entry, error) {
	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

const completionStatsSQL = `
SELECT
    COUNT(*) AS total_days,
    COUNT(*) FILTER (WHERE completed) AS completed_days,
    MAX(date) FILTER (WHERE completed) AS last_completed_date
FROM habit_entries
WHERE habit_id = $1 AND date >= $2`

// CompletionStats summarizes a habit's entries with date >= since.
func (r *Repo) CompletionStats(ctx context.Context, habitID uuid.UUID, since domain.Date) (domain.CompletionStats, error) {
	var (
		stats domain.CompletionStats
		last  *time.Time
	)

	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, completionStatsSQL, habitID, since.Time()).
		Scan(&stats.TotalDays, &stats.CompletedDays, &last)
	if err != nil {
		return domain.CompletionStats{}, postgres.MapError(err, "habit_entry_stats", habitID)
	}

	stats.CompletionRate = domain.Percent(stats.CompletedDays, stats.TotalDays)
	if last != nil {
		d := domain.DateOf(*last)
		stats.LastCompletedDate = &d
	}
	return stats, nil
}

// Export returns entries joined with their habit, newest date first.
// An empty habitIDs exports every habit.
func (r *Repo) Export(ctx context.Context, habitIDs []uuid.UUID) ([]domain.ExportRow, error) {
	qb := postgres.Builder().
		Select("e.id", "e.habit_id", "e.date", "e.completed", "e.completed_at", "e.created_at", "h.name", "h.category").
		From("habit_entries e").
		Join("habits h ON h.id = e.habit_id")
	if len(habitIDs) > 0 {
		qb = qb.Where(squirrel.Eq{"e.habit_id": habitIDs})
	}
	qb = qb.OrderBy("e.date DESC", "h.name")

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build export entries: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}
	defer rows.Close()

	result := []domain.ExportRow{}
	for rows.Next() {
		var (
			row  domain.ExportRow
			date time.Time
		)
		if err := rows.Scan(&row.ID, &row.HabitID, &date, &row.Completed, &row.CompletedAt, &row.CreatedAt, &row.HabitName, &row.HabitCategory); err != nil {
			return nil, fmt.Errorf("export entries: %w", err)
		}
		row.Date = domain.DateOf(date)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var (
		e    domain.Entry
		date time.Time
	)
	if err := row.Scan(&e.ID, &e.HabitID, &date, &e.Completed, &e.CompletedAt, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Date = domain.DateOf(date)
	return &e, nil
}

// scanEntries returns an empty slice (not nil) when there are no rows.
func scanEntries(rows pgx.Rows) ([]*domain.Entry, error) {
	result := []*domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
