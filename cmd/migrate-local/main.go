// Command migrate-local copies the on-disk local store into PostgreSQL once.
// A marker written into the local store afterwards makes later runs no-ops
// unless --force is given.
//
// Exit codes: 0 = success, 1 = error, 2 = partial migration.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/local"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/pgstore"
	"github.com/heartmarshall/habitflow-backend/internal/app"
	"github.com/heartmarshall/habitflow-backend/internal/config"
	"github.com/heartmarshall/habitflow-backend/internal/service/migration"
)

// errPartial marks a run that copied some records but not all of them.
var errPartial = errors.New("migration incomplete, marker not written")

type runContext struct {
	ctx context.Context
	svc *migration.Service
}

type runCmd struct {
	DryRun bool `help:"Report what would be copied without writing."`
	Force  bool `help:"Run even if the local store is already marked as migrated."`
}

func (c runCmd) Run(rc *runContext) error {
	rep, err := rc.svc.Migrate(rc.ctx, migration.Options{Force: c.Force, DryRun: c.DryRun})
	if err != nil {
		return err
	}

	fmt.Printf("outcome:          %s\n", rep.Outcome)
	fmt.Printf("habits created:   %d\n", rep.HabitsCreated)
	fmt.Printf("habits existing:  %d\n", rep.HabitsExisting)
	fmt.Printf("entries migrated: %d\n", rep.EntriesMigrated)
	fmt.Printf("entries skipped:  %d\n", rep.EntriesSkipped)
	fmt.Printf("settings copied:  %t\n", rep.SettingsCopied)
	if rep.MarkedAt != nil {
		fmt.Printf("marked at:        %s\n", rep.MarkedAt.Format(time.RFC3339))
	}
	for _, e := range rep.Errors {
		fmt.Printf("error:            %s\n", e)
	}

	if rep.Outcome == migration.OutcomePartial {
		return errPartial
	}
	return nil
}

type statusCmd struct{}

func (statusCmd) Run(rc *runContext) error {
	st, err := rc.svc.Status(rc.ctx)
	if err != nil {
		return err
	}

	fmt.Printf("migrated:        %t\n", st.Migrated)
	if st.MarkedAt != nil {
		fmt.Printf("marked at:       %s\n", st.MarkedAt.Format(time.RFC3339))
	}
	fmt.Printf("local habits:    %d\n", st.LocalHabits)
	fmt.Printf("local entries:   %d\n", st.LocalEntries)
	fmt.Printf("needs migration: %t\n", st.NeedsMigration)
	return nil
}

var cli struct {
	Config string `help:"Config file. Defaults to ./config.yaml." env:"CONFIG_PATH" type:"path"`
	Local  string `help:"Local store file. Defaults to storage.local_path." type:"path"`

	Run    runCmd    `cmd:"" default:"withargs" help:"Copy local habits, entries and settings into PostgreSQL."`
	Status statusCmd `cmd:"" help:"Show whether the local store still needs migrating."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("migrate-local"),
		kong.Description("Copy the local habitflow store into PostgreSQL."),
		kong.UsageOnError(),
	)

	cfg, err := config.LoadFrom(cli.Config)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Database.Validate(); err != nil {
		log.Fatalf("database config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path := cli.Local
	if path == "" {
		path = cfg.Storage.LocalPath
	}

	if err := run(ctx, kctx, cfg, path, logger); err != nil {
		code := 1
		if errors.Is(err, errPartial) {
			code = 2
		}
		logger.Error("migrate-local failed",
			slog.String("command", kctx.Command()),
			slog.String("local", path),
			slog.String("error", err.Error()),
		)
		os.Exit(code)
	}
}

func run(ctx context.Context, kctx *kong.Context, cfg *config.Config, path string, logger *slog.Logger) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("local store: %w", err)
	}

	kv, err := local.OpenSQLite(ctx, path)
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := app.MigratePostgres(ctx, cfg.Database.DSN, logger); err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	target := pgstore.New(pool)
	svc := migration.NewService(logger,
		local.New(kv, nil),
		target.Habits,
		target.Entries,
		target.Settings,
		cfg.Migration.MarkerKey,
		nil,
	)

	return kctx.Run(&runContext{ctx: ctx, svc: svc})
}
