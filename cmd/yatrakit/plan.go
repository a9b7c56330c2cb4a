package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatrakit/yatrakit/internal/config"
	"github.com/yatrakit/yatrakit/internal/state"
)

var planJSON bool

var planCmd = &cobra.Command{
	Use:   "plan [prompt]",
	Short: "Generate and save a trip plan from a free-text prompt",
	Long: `Generate a structured trip plan from a free-text travel prompt.

Examples:
  yatrakit plan "3 days in Goa under 10000 with beaches"
  yatrakit plan "weekend in Bangalore" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&planJSON, "json", false, "output as JSON")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	session := state.NewSession(st, newGenerator(cfg))
	t, err := session.Plan(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if planJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	}

	printTrip(t)
	return nil
}
