package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"tripplanner/config"
	"tripplanner/handlers"
	"tripplanner/planner"
)

func main() {
	cfg := config.Load()

	root := &cobra.Command{
		Use:   "tripplanner",
		Short: "Rank destinations and draft trip plans from a traveler profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfg.CatalogSource, "catalog", cfg.CatalogSource,
		`Catalog source: "builtin", "database", or a path to a JSON file`)
	root.PersistentFlags().StringVar(&cfg.DatabaseDriver, "db-driver", cfg.DatabaseDriver, "Database driver: postgres or sqlite3")
	root.PersistentFlags().StringVar(&cfg.DatabaseURL, "db-url", cfg.DatabaseURL, "Database connection string")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
	}
	serveCmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "Port to listen on")

	root.AddCommand(serveCmd, newRecommendCmd(cfg), newCatalogCmd(cfg))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cfg *config.Config) error {
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	cat, store, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	var pinger handlers.Pinger
	if store != nil {
		defer store.Close()
		pinger = store
	}

	p := planner.New(cat, plannerOptions(cfg))
	r := handlers.NewRouter(handlers.New(p, cfg.CatalogSource, pinger), cfg.AllowedOrigins)

	log.Printf("🚀 Trip planner starting on port %s (%d destinations from %s catalog)",
		cfg.Port, cat.Len(), cfg.CatalogSource)
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func plannerOptions(cfg *config.Config) planner.Options {
	opts := planner.DefaultOptions()
	opts.MaxProposals = cfg.MaxProposals
	opts.FallbackConfidence = cfg.FallbackConfidence
	return opts
}
