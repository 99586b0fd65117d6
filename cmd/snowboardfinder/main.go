// Package main implements the snowboardfinder CLI - the reconciliation
// pipeline's command-line entry point and debug HTTP surface.
//
// Subcommands are split across multiple cmd_*.go files for
// maintainability:
//
//   - main.go            - entry point, rootCmd, global flags
//   - wiring.go          - buildRig: stores, fetchers, scrapers, orchestrator
//   - cmd_run.go         - run (and its legacy aliases)
//   - cmd_slowscrape.go  - slow-scrape
//   - cmd_scrapestatus.go - scrape-status
//   - cmd_serve.go       - serve (gin debug HTTP surface)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ryanrhee/snowboard-db-sub000/internal/config"
	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger

	// cfg is loaded once in PersistentPreRunE and reused by every subcommand.
	cfg *config.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "snowboardfinder",
	Short: "snowboardfinder - snowboard catalog reconciliation pipeline",
	Long: `snowboardfinder scrapes retailer and manufacturer listings, reconciles
them into a canonical board catalog, and serves the result over a small
debug HTTP surface.

Run without arguments to run the full scrape pipeline once.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		categories := map[logging.Category]bool(nil)
		if cfg.Logging.Categories != nil {
			categories = make(map[logging.Category]bool, len(cfg.Logging.Categories))
			for k, v := range cfg.Logging.Categories {
				categories[logging.Category(k)] = v
			}
		}
		if err := logging.Initialize(".", cfg.Logging.DebugMode, categories); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to initialize file logging: %v\n", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRun(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to config file")

	registerRunFlags(runCmd)
	for _, alias := range legacyRunAliases {
		registerRunFlags(alias)
	}

	rootCmd.AddCommand(
		runCmd,
		slowScrapeCmd,
		scrapeStatusCmd,
		serveCmd,
	)
	rootCmd.AddCommand(legacyRunAliases...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
