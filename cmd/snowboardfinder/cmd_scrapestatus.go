package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scrapeStatusCmd = &cobra.Command{
	Use:   "scrape-status",
	Short: "Report per-retailer cache coverage",
	RunE:  runScrapeStatus,
}

func runScrapeStatus(cmd *cobra.Command, args []string) error {
	r, err := buildRig(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	counts, err := retailerListingCounts(r.store)
	if err != nil {
		return fmt.Errorf("scrape-status: %w", err)
	}

	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"retailers": counts,
	})
}
