package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"grocery-admin/internal/pkg/config"
	"grocery-admin/migrations"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// Applies the embedded migrations with the atlas CLI. Only the DB_* variables are read.
func main() {
	var (
		atlasBin = flag.String("atlas", "atlas", "path to the atlas binary")
		dryRun   = flag.Bool("dry-run", false, "print pending migrations without applying them")
		timeout  = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to read database settings", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, logger, dbCfg, *atlasBin, *dryRun); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dbCfg config.DBConfig, atlasBin string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(migrations.FS))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		logger.Info("applied migration", "file", f.Name, "dry_run", dryRun)
	}
	logger.Info("database is up to date", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
	return nil
}
