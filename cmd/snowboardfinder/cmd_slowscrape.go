package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
	"github.com/ryanrhee/snowboard-db-sub000/internal/scrape"
)

var (
	slowScrapeDelayMs         int
	slowScrapeMaxPages        int
	slowScrapeUseSystemChrome bool
)

// slowScrapeCmd primes the HTTP cache at a deliberately throttled
// pace, ahead of a real run (spec §6: "{delayMs?, maxPages?,
// useSystemChrome?} - rate-limited cache-priming for detail pages").
var slowScrapeCmd = &cobra.Command{
	Use:   "slow-scrape",
	Short: "Rate-limited cache priming for detail pages",
	RunE:  runSlowScrape,
}

func init() {
	slowScrapeCmd.Flags().IntVar(&slowScrapeDelayMs, "delay-ms", 2000, "Delay between page fetches")
	slowScrapeCmd.Flags().IntVar(&slowScrapeMaxPages, "max-pages", 0, "Stop after this many scrapers have primed the cache (0 = no limit); individual pages are not counted")
	slowScrapeCmd.Flags().BoolVar(&slowScrapeUseSystemChrome, "use-system-chrome", false, "Echoed in the output; scrapers always fetch through the plain HTTP fetcher")
}

func runSlowScrape(cmd *cobra.Command, args []string) error {
	r, err := buildRig(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	delay := time.Duration(slowScrapeDelayMs) * time.Millisecond
	selected := scrape.ALL_SCRAPERS.Select(scrape.Scope{})

	primed := 0
	for i, s := range selected {
		if slowScrapeMaxPages > 0 && primed >= slowScrapeMaxPages {
			break
		}
		if cmd.Context().Err() != nil {
			return cmd.Context().Err()
		}

		// useSystemChrome is accepted for interface parity with the debug
		// surface's {action} contract; the reference adapters are plain
		// HTML/JSON-LD pages and never need headless rendering to prime.
		if _, err := s.Scrape(cmd.Context(), scrape.Scope{}); err != nil {
			logging.Scrape("slow-scrape: %s failed to prime cache: %v", s.Name(), err)
		} else {
			primed++
		}

		if i < len(selected)-1 && delay > 0 {
			if err := sleepOrCancel(cmd.Context(), delay); err != nil {
				return err
			}
		}
	}

	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"primed":          primed,
		"useSystemChrome": slowScrapeUseSystemChrome,
	})
}

func sleepOrCancel(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("slow-scrape interrupted: %w", ctx.Err())
	}
}
