package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tw-event-radar/radar/internal/keywords"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Show on how many daily reports each monitored keyword appears",
	RunE:  runKeywords,
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}
	catalog, err := keywords.Default()
	if err != nil {
		return err
	}
	hits, err := catalog.BuildHits(cfg.Report.ContentDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Catalog %s\n", catalog.Version)
	for _, cat := range catalog.Categories {
		items := append([]string(nil), cat.Items...)
		sort.SliceStable(items, func(i, j int) bool {
			return hits[items[i]].HitDays > hits[items[j]].HitDays
		})
		fmt.Fprintf(out, "\n%s (%s)\n", cat.Title, cat.Key)
		for _, k := range items {
			h := hits[k]
			if h.HitDays == 0 {
				fmt.Fprintf(out, "  %-16s 0\n", k)
				continue
			}
			fmt.Fprintf(out, "  %-16s %d  (%s .. %s)\n", k, h.HitDays, h.FirstSeen, h.LastSeen)
		}
	}
	return nil
}
