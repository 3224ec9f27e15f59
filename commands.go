package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tripplanner/catalog"
	"tripplanner/config"
	"tripplanner/database"
	"tripplanner/handlers"
	"tripplanner/planner"
)

// loadCatalog resolves the configured catalog source. The returned store is
// non-nil only for database-backed catalogs and must be closed by the caller.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, *database.Store, error) {
	switch cfg.CatalogSource {
	case config.SourceBuiltin, "":
		return catalog.Builtin(), nil, nil

	case config.SourceDatabase:
		store, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		cat, err := store.LoadCatalog()
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		if cat.Len() == 0 {
			log.Println("⚠️  Stored catalog is empty, using built-in catalog (run `catalog seed`)")
			cat = catalog.Builtin()
		}
		if err := cat.Validate(); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("stored catalog is invalid: %w", err)
		}
		return cat, store, nil

	default:
		cat, err := catalog.LoadFile(cfg.CatalogSource)
		if err != nil {
			return nil, nil, err
		}
		return cat, nil, nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ─── recommend ────────────────────────────────────────────────────────────────

func newRecommendCmd(cfg *config.Config) *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print proposals for a traveler profile JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := readProfile(profilePath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			cat, store, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			p := planner.New(cat, plannerOptions(cfg))
			return writeJSON(cmd.OutOrStdout(), handlers.PlanResponse{
				RequestID: uuid.New().String(),
				Proposals: p.Recommend(profile),
				Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
			})
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", `Traveler profile JSON file ("-" for stdin)`)
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func readProfile(path string, stdin io.Reader) (planner.Profile, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return planner.Profile{}, fmt.Errorf("read profile: %w", err)
	}

	var profile planner.Profile
	if err := json.Unmarshal(b, &profile); err != nil {
		return planner.Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	// Same rules the HTTP handler enforces through gin's binder.
	if err := binding.Validator.ValidateStruct(&profile); err != nil {
		return planner.Profile{}, fmt.Errorf("invalid profile: %w", err)
	}
	return profile, nil
}

// ─── catalog ──────────────────────────────────────────────────────────────────

func newCatalogCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect, validate, and seed the destination catalog",
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print the configured catalog as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, store, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}
			return writeJSON(cmd.OutOrStdout(), cat)
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configured catalog's invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, store, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}
			if err := cat.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %d destinations OK (%s)\n", cat.Len(), cfg.CatalogSource)
			return nil
		},
	}

	var seedFrom string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a catalog into the configured database",
		RunE: func(cmd *cobra.Command, args []string) error {
			src := *cfg
			src.CatalogSource = seedFrom
			if seedFrom == config.SourceDatabase {
				return fmt.Errorf("--from must be %q or a JSON file", config.SourceBuiltin)
			}
			cat, _, err := loadCatalog(&src)
			if err != nil {
				return err
			}
			if err := cat.Validate(); err != nil {
				return err
			}

			store, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SeedCatalog(cat); err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
			n, err := store.CountDestinations()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Seeded %d destinations from %s\n", n, seedFrom)
			return nil
		},
	}
	seedCmd.Flags().StringVar(&seedFrom, "from", config.SourceBuiltin, "Catalog to seed: builtin or a JSON file")

	diffCmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how the configured catalog differs from the built-in one",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, store, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			out, err := catalog.Diff(catalog.Builtin(), cat)
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No differences from the built-in catalog.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.AddCommand(exportCmd, validateCmd, seedCmd, diffCmd)
	return cmd
}
