package cmd

import (
	"context"
	"fmt"

	"card-manager/core/catalog"
	"card-manager/core/config"
	"card-manager/core/database"
	"card-manager/core/logger"
	"card-manager/core/storage"
	"card-manager/feature/pricesync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncSetCode string
	syncDryRun  bool
	syncVerbose bool
)

// syncCmd runs one price sync pass and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync card prices from Cardmarket",
	Long: `Fetches the Cardmarket product catalog and price guide, resolves the
matching product for every stored card variant and upserts price snapshots.

Examples:
  # Sync every set
  card-manager sync

  # Sync one set
  card-manager sync --set OP-09

  # Resolve and report without writing (validate override rules)
  card-manager sync --set OP-13 --dry-run --verbose`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncSetCode, "set", "", "Restrict the run to one set code")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Resolve and count without writing")
	syncCmd.Flags().BoolVar(&syncVerbose, "verbose", false, "Log every skip and override candidate list")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	var archiver *catalog.Archiver
	if cfg.Catalog.ArchiveEnabled {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			l.Warn("Feed archive disabled, storage unavailable", zap.Error(err))
		} else {
			archiver = catalog.NewArchiver(store, cfg.Storage.Bucket, l)
		}
	}
	feeds := catalog.NewClient(cfg.Catalog, l, archiver)

	svc := pricesync.NewService(db, feeds, l)

	result, err := svc.Sync(ctx, pricesync.SyncOptions{
		SetCode: syncSetCode,
		DryRun:  syncDryRun,
		Verbose: syncVerbose,
	})
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	l.Info("Sync complete",
		zap.Int("sets", result.Sets),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Bool("dry_run", syncDryRun),
	)

	if syncDryRun {
		l.Info("Dry-run mode: No changes were made.")
	}

	return nil
}
