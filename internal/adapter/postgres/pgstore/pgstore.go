// Package pgstore assembles the PostgreSQL repositories into a store.Backend.
package pgstore

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/habit"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/habitflow-backend/internal/store"
)

var (
	_ store.HabitStore    = (*habit.Repo)(nil)
	_ store.EntryStore    = (*entry.Repo)(nil)
	_ store.SettingsStore = (*settings.Repo)(nil)
	_ store.TxManager     = (*postgres.TxManager)(nil)
)

// New wires every repository over pool. Close closes the pool.
func New(pool *pgxpool.Pool) store.Backend {
	return store.Backend{
		Name:     "postgres",
		Habits:   habit.New(pool),
		Entries:  entry.New(pool),
		Settings: settings.New(pool),
		Tx:       postgres.NewTxManager(pool),
		Pinger:   pool,
		Close:    pool.Close,
	}
}
