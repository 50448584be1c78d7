package cmd

import (
	"errors"
	"fmt"
	"os"

	"seller-sync/core/logger"
	"seller-sync/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "seller-sync",
	Short: "Marketplace stock and price synchronization",
	Long: `Seller-sync pushes the supplier's inventory spreadsheet into a
marketplace seller account: it fetches the catalog, downloads the stock
feed, reconciles quantities and prices, and submits batched updates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format with the debug configuration gives readable
		// ISO8601 timestamps for a CLI tool.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		if l, logErr := logger.New(cfg); logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}

		os.Exit(exitCode(err))
	}
}

// exitCode maps classified sync failures to distinct exit codes so callers
// can tell a flaky network (2) from bad supplier data (3) without parsing
// logs. Everything else exits 1.
func exitCode(err error) int {
	var serr *sync.Error
	if errors.As(err, &serr) {
		return serr.Category.ExitCode()
	}
	return 1
}
