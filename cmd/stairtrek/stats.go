package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/stairtrek/internal/config"
	"github.com/fyrsmithlabs/stairtrek/internal/record"
	"github.com/fyrsmithlabs/stairtrek/internal/stats"
)

// statsCmd prints a one-shot summary without entering the TUI
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a progress summary and exit",
	Long: `Print totals, averages, and the projected summit date as plain text.
Useful from scripts or cron.

Examples:
  stairtrek stats
  stairtrek stats --data ~/climbs.csv`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := record.NewStore(cfg.Storage.DataFile, nil)
	records, err := store.Load()
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), cfg, records)
	return nil
}

func printSummary(w io.Writer, cfg *config.Config, records []record.Record) {
	mountain := cfg.Mountain
	total := record.TotalFlights(records)
	climbedFeet := float64(total) * mountain.FeetPerFlight
	ratio := climbedFeet / mountain.HeightFeet

	fmt.Fprintf(w, "Mountain:        %s (%.0f ft)\n", mountain.Name, mountain.HeightFeet)
	fmt.Fprintf(w, "Days logged:     %d\n", len(records))
	fmt.Fprintf(w, "Total flights:   %d\n", total)
	fmt.Fprintf(w, "Height climbed:  %.2f ft (%.2f%%)\n", climbedFeet, ratio*100)

	avg := stats.ComputeAverages(records, cfg.Stats.Grouping())
	fmt.Fprintf(w, "Daily average:   %.2f flights\n", avg.Daily)
	fmt.Fprintf(w, "Weekly average:  %.2f flights\n", avg.Weekly)
	fmt.Fprintf(w, "Monthly average: %.2f flights\n", avg.Monthly)

	proj, ok := stats.Predict(records, mountain.TargetFlights(), nowFunc())
	if !ok {
		fmt.Fprintln(w, "Projection:      not enough data")
		return
	}
	fmt.Fprintf(w, "Days to summit:  %d\n", proj.WholeDays())
	fmt.Fprintf(w, "Summit date:     %s\n", record.FormatDate(proj.CompletionDate))
}
