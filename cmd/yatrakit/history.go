package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatrakit/yatrakit/internal/config"
)

var (
	historyCursor string
	historyLimit  int
	historyJSON   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved trips, newest first",
	Long: `List saved trips one page at a time.

Examples:
  yatrakit history --limit 5
  yatrakit history --cursor 2025-06-01T10:58:00.000Z`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyCursor, "cursor", "", "resume from a previous page's nextCursor")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum trips per page")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var cursor *string
	if historyCursor != "" {
		cursor = &historyCursor
	}
	page := st.Paginate(cursor, historyLimit)

	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}

	if len(page.Trips) == 0 {
		fmt.Println("No trips found.")
		return nil
	}
	for _, t := range page.Trips {
		fmt.Printf("%s  %s  (%d days, %s)\n", t.CreatedAt, t.TripTitle, len(t.Days), t.ID)
	}
	if page.NextCursor != nil {
		fmt.Printf("\nMore available: yatrakit history --cursor %s\n", *page.NextCursor)
	}
	return nil
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recently created trip",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		st, cleanup, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		t, ok := st.Latest()
		if !ok {
			fmt.Println("No trips yet. Try: yatrakit plan \"3 days in Goa\"")
			return nil
		}
		printTrip(t)
		return nil
	},
}
