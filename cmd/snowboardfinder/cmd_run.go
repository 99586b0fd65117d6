package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ryanrhee/snowboard-db-sub000/internal/pipeline"
	"github.com/ryanrhee/snowboard-db-sub000/internal/scrape"
)

var (
	runSites         []string
	runRetailers     []string
	runManufacturers []string
	runRegions       []string
	runFrom          string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reconciliation pipeline once",
	RunE:  runRun,
}

// legacyRunAliases map one-to-one to run (spec §6: "Legacy aliases
// metadata-check|run-full|full-pipeline|scrape-specs|run-manufacturers
// all map to run").
var legacyRunAliases = []*cobra.Command{
	{Use: "metadata-check", Short: "Alias for run", Hidden: true, RunE: runRun},
	{Use: "run-full", Short: "Alias for run", Hidden: true, RunE: runRun},
	{Use: "full-pipeline", Short: "Alias for run", Hidden: true, RunE: runRun},
	{Use: "scrape-specs", Short: "Alias for run", Hidden: true, RunE: runRun},
	{Use: "run-manufacturers", Short: "Alias for run", Hidden: true, RunE: runRun},
}

func registerRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&runSites, "sites", nil, "Limit to these scraper names")
	cmd.Flags().StringSliceVar(&runRetailers, "retailers", nil, "Limit to these retailer names")
	cmd.Flags().StringSliceVar(&runManufacturers, "manufacturers", nil, "Limit to these manufacturer names")
	cmd.Flags().StringSliceVar(&runRegions, "regions", nil, "Limit to these regions")
	cmd.Flags().StringVar(&runFrom, "from", "scrape", `Pipeline mode: "scrape", "review-sites", or "resolve"`)
}

func runRun(cmd *cobra.Command, args []string) error {
	r, err := buildRig(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	scope := pipeline.Scope{
		Scope: scrape.Scope{
			Sites:         runSites,
			Retailers:     runRetailers,
			Manufacturers: runManufacturers,
			Regions:       runRegions,
		},
		From: runFrom,
	}

	result, err := r.orchestrator.Run(cmd.Context(), scope)
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	return writeRunReply(os.Stdout, result)
}

func writeRunReply(w *os.File, result *pipeline.Result) error {
	enc := json.NewEncoder(w)
	return enc.Encode(map[string]interface{}{
		"run":    result.RunID,
		"boards": result.Boards,
		"errors": result.Errors,
	})
}
