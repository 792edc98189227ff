package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"pushgate/config"
	"pushgate/internal/domain/repository"
	"pushgate/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

// Supported subcommands:
// - age-devices:     Disable devices whose registration has gone stale
// - cleanup-devices: Remove devices disabled longer than the retention period
// - cleanup-history: Purge old delivery history entries

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	cmd := flag.NewFlagSet(name, flag.ExitOnError)
	dryRun := cmd.Bool("dry-run", false, "Report what would be affected without changing anything")
	olderThan := cmd.Duration("older-than", 0, "Override the configured retention window (e.g. 720h)")
	if err := cmd.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if cfg.Retention == nil {
		cfg.Retention = &config.RetentionConfig{}
	}
	if *olderThan > 0 {
		cfg.Retention.DeviceStaleAfter = *olderThan
		cfg.Retention.DeviceDisabledPurgeAfter = *olderThan
		cfg.Retention.HistoryPurgeAfter = *olderThan
	}
	if err := validateRetention(name, cfg.Retention); err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}
	defer closeDB(db)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	switch name {
	case "age-devices":
		return ageDevices(ctx, cfg, db, logger, *dryRun)
	case "cleanup-devices":
		return cleanupDevices(ctx, cfg, db, logger, *dryRun)
	case "cleanup-history":
		return cleanupHistory(ctx, cfg, db, logger, *dryRun)
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", name)
	}
}

// validateRetention ensures the window driving the requested subcommand is
// set, either in config or through -older-than.
func validateRetention(name string, retention *config.RetentionConfig) error {
	var window time.Duration
	switch name {
	case "age-devices":
		window = retention.DeviceStaleAfter
	case "cleanup-devices":
		window = retention.DeviceDisabledPurgeAfter
	case "cleanup-history":
		window = retention.HistoryPurgeAfter
	default:
		return nil
	}
	if window <= 0 {
		return errors.Errorf("no retention window for %s: set it in config or pass -older-than", name)
	}

	return nil
}

// ageDevices disables devices that have not re-registered within the
// staleness window. Disabled devices stop receiving messages but keep
// their registration until cleanup-devices removes them.
func ageDevices(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *slog.Logger, dryRun bool) error {
	cutoff := time.Now().Add(-cfg.Retention.DeviceStaleAfter)
	logger.Info("Aging stale devices",
		slog.Time("cutoff", cutoff),
		slog.Bool("dry_run", dryRun),
	)
	if dryRun {
		return nil
	}

	devices := postgres.NewDeviceRepository(db)
	disabled, err := devices.DisableStale(ctx, cutoff)
	if err != nil {
		return errors.Wrap(err, "failed to disable stale devices")
	}

	logger.Info("Stale devices disabled", slog.Int64("count", disabled))

	return nil
}

// cleanupDevices removes devices that have been disabled longer than the
// retention period.
func cleanupDevices(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *slog.Logger, dryRun bool) error {
	cutoff := time.Now().Add(-cfg.Retention.DeviceDisabledPurgeAfter)
	logger.Info("Cleaning up disabled devices",
		slog.Time("cutoff", cutoff),
		slog.Bool("dry_run", dryRun),
	)
	if dryRun {
		return nil
	}

	devices := postgres.NewDeviceRepository(db)
	removed, err := devices.DeleteDisabledBefore(ctx, cutoff)
	if err != nil {
		return errors.Wrap(err, "failed to delete disabled devices")
	}

	logger.Info("Disabled devices removed", slog.Int64("count", removed))

	return nil
}

// cleanupHistory purges delivery history entries older than the retention
// period.
func cleanupHistory(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *slog.Logger, dryRun bool) error {
	cutoff := time.Now().Add(-cfg.Retention.HistoryPurgeAfter)
	logger.Info("Purging delivery history",
		slog.Time("cutoff", cutoff),
		slog.Bool("dry_run", dryRun),
	)
	if dryRun {
		return nil
	}

	history := postgres.NewHistoryRepository(db)
	result, err := history.PurgeBefore(ctx, cutoff)
	if err != nil {
		return errors.Wrap(err, "failed to purge history")
	}

	logPurgeResult(logger, result)

	return nil
}

func logPurgeResult(logger *slog.Logger, result repository.HistoryPurgeResult) {
	logger.Info("History entries purged",
		slog.Int64("pending", result.Pending),
		slog.Int64("sent", result.Sent),
		slog.Int64("failed", result.Failed),
		slog.Int64("total", result.Total()),
	)
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}

func printUsage() {
	fmt.Println("Usage: maintenance <subcommand> [flags]")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  age-devices       Disable devices whose registration has gone stale")
	fmt.Println("  cleanup-devices   Remove devices disabled longer than the retention period")
	fmt.Println("  cleanup-history   Purge old delivery history entries")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -dry-run          Report what would be affected without changing anything")
	fmt.Println("  -older-than       Override the configured retention window (e.g. 720h)")
}
