package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tw-event-radar/radar/internal/archive"
	"github.com/tw-event-radar/radar/internal/daily"
	"github.com/tw-event-radar/radar/internal/services"
	"github.com/tw-event-radar/radar/internal/typesense"
	"github.com/tw-event-radar/radar/internal/utils"
)

var exportFlags struct {
	input     string
	output    string
	topEvents int
	index     bool
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the daily Markdown report from the monitoring workbook",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportFlags.input, "input", "i", "", "Monitoring workbook (default from RADAR_XLSX)")
	f.StringVarP(&exportFlags.output, "output", "o", "", "Output file (default <content dir>/<YYYY-MM-DD>.md)")
	f.IntVar(&exportFlags.topEvents, "top-events", 0, "Detailed events in the report, 0 uses the default")
	f.BoolVar(&exportFlags.index, "index", false, "Upsert the exported report into Typesense")
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	opts := services.ExportOptions{
		InputPath:  cfg.Report.Input,
		OutputPath: exportFlags.output,
		TopEvents:  cfg.Report.TopEvents,
	}
	if exportFlags.input != "" {
		opts.InputPath = exportFlags.input
	}
	if exportFlags.topEvents > 0 {
		opts.TopEvents = exportFlags.topEvents
	}

	var summaries services.SummaryArchive
	if cfg.Archive.Path != "" {
		store, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		summaries = store
	}

	result, err := services.NewExportService(cfg.Report.ContentDir, summaries, logger).Export(ctx, opts)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Message())

	if !exportFlags.index {
		return nil
	}
	index, err := typesense.NewIndex(cfg.Typesense)
	if errors.Is(err, typesense.ErrDisabled) {
		logger.Warn().Msg("Typesense API key not set, skipping index")
		return nil
	}
	if err != nil {
		return err
	}
	if err := index.EnsureCollection(ctx); err != nil {
		return err
	}
	slug, ok := utils.SlugFromFilename(filepath.Base(result.OutputPath))
	if !ok {
		return fmt.Errorf("output %s is not a markdown file", result.OutputPath)
	}
	store := daily.NewStore(filepath.Dir(result.OutputPath))
	if err := services.NewIndexService(store, index, logger).IndexOne(ctx, slug); err != nil {
		return fmt.Errorf("index %s: %w", slug, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %s into %s\n", slug, index.Collection())
	return nil
}
