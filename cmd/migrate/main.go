// Command migrate manages the PostgreSQL schema with the embedded goose
// migrations. It reads the same configuration as the server; only the
// database section is used.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitflow-backend/internal/app"
	"github.com/heartmarshall/habitflow-backend/internal/config"
)

type runContext struct {
	ctx      context.Context
	migrator *postgres.Migrator
	logger   *slog.Logger
}

type upCmd struct{}

func (upCmd) Run(rc *runContext) error {
	results, err := rc.migrator.Up(rc.ctx)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		rc.logger.Info("schema is up to date")
	}
	for _, r := range results {
		rc.logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

type downCmd struct{}

func (downCmd) Run(rc *runContext) error {
	r, err := rc.migrator.Down(rc.ctx)
	if err != nil {
		return err
	}
	rc.logger.Info("migration rolled back",
		slog.Int64("version", r.Source.Version),
		slog.Duration("duration", r.Duration),
	)
	return nil
}

type statusCmd struct{}

func (statusCmd) Run(rc *runContext) error {
	statuses, err := rc.migrator.Status(rc.ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return tw.Flush()
}

var cli struct {
	Config string `help:"Config file. Defaults to ./config.yaml." env:"CONFIG_PATH" type:"path"`

	Up     upCmd     `cmd:"" default:"1" help:"Apply all pending migrations."`
	Down   downCmd   `cmd:"" help:"Roll back the most recent migration."`
	Status statusCmd `cmd:"" help:"List migrations and whether they are applied."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("migrate"),
		kong.Description("Manage the habitflow PostgreSQL schema."),
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

	m, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close()

	if err := kctx.Run(&runContext{ctx: ctx, migrator: m, logger: logger}); err != nil {
		logger.Error("migrate failed", slog.String("command", kctx.Command()), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
