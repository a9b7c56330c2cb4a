package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yatrakit/yatrakit/internal/config"
	"github.com/yatrakit/yatrakit/internal/export"
	"github.com/yatrakit/yatrakit/internal/trip"
)

var (
	exportStart string
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:   "export [trip-id]",
	Short: "Export a trip as an iCalendar (.ics) file",
	Long: `Export a saved trip as an iCalendar file, one event per activity.

Without a trip id the most recent trip is exported.

Examples:
  yatrakit export --start 2025-12-20 --out goa.ics
  yatrakit export 1b6fe3 --start 2025-12-20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportStart, "start", "", "first day of the trip (YYYY-MM-DD, default today)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var target trip.Trip
	if len(args) == 1 {
		found := false
		for _, t := range st.ReadAll() {
			if t.ID == args[0] {
				target, found = t, true
				break
			}
		}
		if !found {
			return fmt.Errorf("no trip with id %s", args[0])
		}
	} else {
		var ok bool
		target, ok = st.Latest()
		if !ok {
			return fmt.Errorf("no trips to export")
		}
	}

	start := time.Now()
	if exportStart != "" {
		start, err = time.Parse("2006-01-02", exportStart)
		if err != nil {
			return fmt.Errorf("invalid start date %q: %w", exportStart, err)
		}
	}

	serialized := export.Calendar(target, start).Serialize()
	if exportOut == "" {
		fmt.Print(serialized)
		return nil
	}
	return os.WriteFile(exportOut, []byte(serialized), 0644)
}
