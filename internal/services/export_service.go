package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tw-event-radar/radar/internal/loader"
	"github.com/tw-event-radar/radar/internal/logging"
	"github.com/tw-event-radar/radar/internal/models"
	"github.com/tw-event-radar/radar/internal/report"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// CompletionPrefix starts the message echoed after a successful export.
const CompletionPrefix = "Export daily markdown: "

// SummaryArchive stores per-day counters of exported reports.
type SummaryArchive interface {
	Save(ctx context.Context, summary *models.DailySummary) error
}

type ExportOptions struct {
	InputPath string
	// OutputPath overrides <content dir>/<YYYY-MM-DD>.md.
	OutputPath string
	// TopEvents caps the detailed events; <= 0 uses the default.
	TopEvents int
	// Now stamps the report; zero means the current time.
	Now time.Time
}

type ExportResult struct {
	RunID      string         `json:"run_id"`
	Date       string         `json:"date"`
	OutputPath string         `json:"output_path"`
	Summary    report.Summary `json:"summary"`
	Stats      map[string]int `json:"stats"`
	Bytes      int            `json:"bytes"`
}

// Message is the completion line for the operator.
func (r *ExportResult) Message() string {
	return CompletionPrefix + r.OutputPath
}

// ExportService turns a monitoring workbook into a daily Markdown document.
type ExportService struct {
	contentDir string
	composer   *report.Composer
	archive    SummaryArchive
	logger     *logging.Logger
	load       func(path string) (*models.Bundle, error)
}

// NewExportService creates the service. archive may be nil to skip archiving.
func NewExportService(contentDir string, archive SummaryArchive, logger *logging.Logger) *ExportService {
	return &ExportService{
		contentDir: contentDir,
		composer:   report.NewComposer(nil),
		archive:    archive,
		logger:     logger,
		load:       loader.LoadWorkbook,
	}
}

// Export loads the workbook, composes and writes the report. A missing
// workbook or sheet fails before anything is written.
func (s *ExportService) Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	ctx, span := otel.Tracer("export").Start(ctx, "ExportService.Export")
	defer span.End()

	runID := uuid.NewString()
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	log := s.logger.WithCorrelationId(runID)
	span.SetAttributes(attribute.String("export.run_id", runID), attribute.String("export.input", opts.InputPath))

	bundle, err := s.loadBundle(ctx, opts.InputPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		log.Error().Err(err).Str("input", opts.InputPath).Msg("Failed to load workbook")
		return nil, err
	}
	log.Info().
		Str("input", opts.InputPath).
		Int("news", len(bundle.News)).
		Int("ranked_events", len(bundle.RankedEvents)).
		Int("company_heat", len(bundle.CompanyHeat)).
		Int("run_log", len(bundle.RunLog)).
		Msg("Workbook loaded")

	_, composeSpan := otel.Tracer("export").Start(ctx, "report.Compose")
	r := s.composer.Compose(report.InputFromBundle(bundle, opts.TopEvents, now))
	content := r.Markdown()
	composeSpan.SetAttributes(attribute.Int("report.events", len(r.Events)), attribute.Int("report.bytes", len(content)))
	composeSpan.End()

	path := opts.OutputPath
	if path == "" {
		path = report.DefaultPath(s.contentDir, r.Date)
	}
	if err := report.WriteFile(path, content); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return nil, err
	}

	result := &ExportResult{
		RunID:      runID,
		Date:       r.Date,
		OutputPath: path,
		Summary:    r.Summary,
		Stats:      r.Stats(),
		Bytes:      len(content),
	}
	s.archiveSummary(ctx, log, r, result)

	span.SetAttributes(attribute.String("export.output", path))
	span.SetStatus(codes.Ok, "exported")
	log.Info().
		Str("output", path).
		Int("total_events", r.Summary.TotalEvents).
		Int("new_events", r.Summary.NewEvents).
		Int("trending_events", r.Summary.TrendingEvents).
		Int("with_evidence", result.Stats["with_evidence"]).
		Msg(result.Message())
	return result, nil
}

func (s *ExportService) loadBundle(ctx context.Context, path string) (*models.Bundle, error) {
	_, span := otel.Tracer("export").Start(ctx, "loader.LoadWorkbook")
	defer span.End()
	span.SetAttributes(attribute.String("loader.path", path))

	bundle, err := s.load(path)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return bundle, nil
}

// archiveSummary records the counters. Failures are logged and do not fail
// the export, the document is already written.
func (s *ExportService) archiveSummary(ctx context.Context, log *logging.Logger, r *report.Report, result *ExportResult) {
	if s.archive == nil {
		return
	}
	summary := &models.DailySummary{
		Date:           r.Date,
		TotalEvents:    r.Summary.TotalEvents,
		NewEvents:      r.Summary.NewEvents,
		TrendingEvents: r.Summary.TrendingEvents,
		TopEvent:       r.TopLine(),
		OutputPath:     result.OutputPath,
		RunID:          result.RunID,
	}
	if err := s.archive.Save(ctx, summary); err != nil {
		log.Warn().Err(err).Str("date", r.Date).Msg("Failed to archive daily summary")
	}
}
