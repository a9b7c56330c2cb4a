package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yatrakit/yatrakit/internal/config"
	"github.com/yatrakit/yatrakit/internal/engine"
	"github.com/yatrakit/yatrakit/internal/llm"
	"github.com/yatrakit/yatrakit/internal/state"
	"github.com/yatrakit/yatrakit/internal/store"
	"github.com/yatrakit/yatrakit/internal/trip"
)

// openStore builds the trip store for the configured backend. The cleanup
// func releases backend resources and is always safe to call.
func openStore(cfg *config.Config) (*store.TripStore, func(), error) {
	noop := func() {}

	switch cfg.Store.Backend {
	case "sqlite":
		path := cfg.Store.Path
		if strings.HasSuffix(path, ".json") {
			path = strings.TrimSuffix(path, ".json") + ".db"
		}
		kv, err := store.NewSQLiteKV(path)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store.New(kv), func() { kv.Close() }, nil
	case "memory":
		return store.New(store.NewMemoryKV()), noop, nil
	default:
		return store.New(store.NewFileKV(expandHome(cfg.Store.Path))), noop, nil
	}
}

// newGenerator selects the generation backend.
func newGenerator(cfg *config.Config) state.Generator {
	if cfg.Generator.Mode == "remote" {
		return llm.NewClient(cfg.Generator.APIURL, os.Getenv(cfg.Generator.APIKeyEnv), cfg.Generator.Model)
	}
	return engine.New()
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func printTrip(t trip.Trip) {
	fmt.Printf("%s\n", t.TripTitle)
	fmt.Printf("  Budget: %s\n", t.TotalBudget)
	if tb := t.TravelBreakdown; tb != nil {
		fmt.Printf("  Getting there: flight %s | train %s | bus %s\n", tb.Flight, tb.Train, tb.Bus)
		if tb.Notes != "" {
			fmt.Printf("  %s\n", tb.Notes)
		}
	}
	for _, day := range t.Days {
		fmt.Printf("\n%s\n", day.Title)
		for _, a := range day.Activities {
			marker := " "
			if a.PhotoSpot {
				marker = "*"
			}
			fmt.Printf("  %s %-6s %s (%s)\n", marker, a.Time, a.Place, a.Cost)
			if a.Description != "" {
				fmt.Printf("           %s\n", a.Description)
			}
		}
	}
}
