package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
	"github.com/ryanrhee/snowboard-db-sub000/internal/pipeline"
	"github.com/ryanrhee/snowboard-db-sub000/internal/scrape"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the debug HTTP action surface",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP listen port")
}

// actionRequest is the one debug-surface document shape (spec §6:
// "{action, ...params}").
type actionRequest struct {
	Action string `json:"action"`

	Sites         []string `json:"sites"`
	Retailers     []string `json:"retailers"`
	Manufacturers []string `json:"manufacturers"`
	Regions       []string `json:"regions"`
	From          string   `json:"from"`

	DelayMs         int  `json:"delayMs"`
	MaxPages        int  `json:"maxPages"`
	UseSystemChrome bool `json:"useSystemChrome"`
}

// runAliases maps every legacy action name to "run" (spec §6).
var runAliases = map[string]bool{
	"run":               true,
	"metadata-check":    true,
	"run-full":          true,
	"full-pipeline":     true,
	"scrape-specs":      true,
	"run-manufacturers": true,
}

func runServe(cmd *cobra.Command, args []string) error {
	r, err := buildRig(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.POST("/action", actionHandler(r))

	addr := fmt.Sprintf(":%d", servePort)
	logging.Pipeline("serving debug action surface on %s", addr)
	return engine.Run(addr)
}

func actionHandler(r *rig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req actionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		switch {
		case runAliases[req.Action]:
			handleRunAction(c, r, req)
		case req.Action == "slow-scrape":
			handleSlowScrapeAction(c, r, req)
		case req.Action == "scrape-status":
			handleScrapeStatusAction(c, r)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unrecognized action %q", req.Action)})
		}
	}
}

func handleRunAction(c *gin.Context, r *rig, req actionRequest) {
	scope := pipeline.Scope{
		Scope: scrape.Scope{
			Sites:         req.Sites,
			Retailers:     req.Retailers,
			Manufacturers: req.Manufacturers,
			Regions:       req.Regions,
		},
		From: req.From,
	}

	result, err := r.orchestrator.Run(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run":    result.RunID,
		"boards": result.Boards,
		"errors": result.Errors,
	})
}

func handleSlowScrapeAction(c *gin.Context, r *rig, req actionRequest) {
	selected := scrape.ALL_SCRAPERS.Select(scrape.Scope{})
	primed := 0
	for _, s := range selected {
		if req.MaxPages > 0 && primed >= req.MaxPages {
			break
		}
		if _, err := s.Scrape(c.Request.Context(), scrape.Scope{}); err != nil {
			logging.Scrape("slow-scrape: %s failed to prime cache: %v", s.Name(), err)
			continue
		}
		primed++
	}
	c.JSON(http.StatusOK, gin.H{"primed": primed, "useSystemChrome": req.UseSystemChrome})
}

func handleScrapeStatusAction(c *gin.Context, r *rig) {
	counts, err := retailerListingCounts(r.store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"retailers": counts})
}
