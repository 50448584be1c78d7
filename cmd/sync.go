package cmd

import (
	"context"
	"fmt"

	"seller-sync/core/config"
	"seller-sync/core/logger"
	"seller-sync/core/marketplace"
	"seller-sync/core/supplier"
	"seller-sync/feature/sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRun bool

// syncCmd runs one full synchronization pass.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one stock and price synchronization pass",
	Long: `Run the full pipeline once: fetch the seller catalog, download the
supplier feed, then reconcile and submit stock and price updates in batches.

Examples:
  # Full run
  seller-sync sync

  # Reconcile and report without submitting anything
  seller-sync sync --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Reconcile and report without submitting updates")
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
	defer l.Sync()

	// Tag every log line of this run for correlation.
	l = logger.WithRunID(l, uuid.NewString())

	if cfg.Marketplace.ClientID == "" || cfg.Marketplace.SellerToken == "" {
		return fmt.Errorf("marketplace credentials missing: set MARKETPLACE_CLIENT_ID and MARKETPLACE_SELLER_TOKEN")
	}

	if dryRun {
		cfg.Sync.DryRun = true
	}

	l.Info("Starting sync",
		zap.String("marketplace", cfg.Marketplace.BaseURL),
		zap.String("supplier_feed", cfg.Supplier.URL),
		zap.Bool("dry_run", cfg.Sync.DryRun),
	)

	market := marketplace.NewClient(cfg.Marketplace)
	feed := supplier.NewFeed(cfg.Supplier)
	svc := sync.NewService(market, feed, cfg.Sync, l)

	if _, err := svc.Run(ctx); err != nil {
		return err
	}
	return nil
}
