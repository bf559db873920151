package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tw-event-radar/radar/internal/archive"
)

var summariesFlags struct {
	limit int
}

var summariesCmd = &cobra.Command{
	Use:   "summaries",
	Short: "Show the archived per-day counters",
	RunE:  runSummaries,
}

func init() {
	summariesCmd.Flags().IntVarP(&summariesFlags.limit, "limit", "n", 30, "Days to show")
}

func runSummaries(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}
	if cfg.Archive.Path == "" {
		return errors.New("summaries: archive is disabled (set RADAR_ARCHIVE_PATH)")
	}
	store, err := archive.Open(cfg.Archive.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.List(cmd.Context(), summariesFlags.limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No summaries archived yet. Run 'radar export' first.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTOTAL\tNEW\tTRENDING\tTOP EVENT")
	for _, s := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", s.Date, s.TotalEvents, s.NewEvents, s.TrendingEvents, s.TopEvent)
	}
	return tw.Flush()
}
