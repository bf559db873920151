package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tw-event-radar/radar/internal/daily"
	"github.com/tw-event-radar/radar/internal/keywords"
	"github.com/tw-event-radar/radar/internal/services"
	"github.com/tw-event-radar/radar/internal/typesense"
)

var reindexFlags struct {
	workers int
}

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Upsert every daily report into the Typesense collection",
	RunE:  runReindex,
}

func init() {
	reindexCmd.Flags().IntVarP(&reindexFlags.workers, "workers", "w", 4, "Concurrent upserts")
}

func runReindex(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	index, err := typesense.NewIndex(cfg.Typesense)
	if err != nil {
		return fmt.Errorf("reindex: %w (set TYPESENSE_API_KEY)", err)
	}

	svc := services.NewIndexService(daily.NewStore(cfg.Report.ContentDir), index, logger)
	n, err := svc.Reindex(cmd.Context(), reindexFlags.workers)
	if err != nil {
		return fmt.Errorf("reindex: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d reports into %s\n", n, index.Collection())

	catalog, err := keywords.Default()
	if err != nil {
		return err
	}
	loaded, err := index.UpsertSynonyms(cmd.Context(), catalog.Synonyms)
	if err != nil {
		return fmt.Errorf("reindex: %w", err)
	}
	logger.Info().Int("synonyms", loaded).Str("catalog", catalog.Version).Msg("Keyword synonyms loaded")
	return nil
}
