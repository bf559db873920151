package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/tw-event-radar/radar/internal/daily"
	"github.com/tw-event-radar/radar/internal/logging"
	"github.com/tw-event-radar/radar/internal/typesense"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// ReportIndexer receives daily reports for full-text search.
type ReportIndexer interface {
	EnsureCollection(ctx context.Context) error
	Upsert(ctx context.Context, doc typesense.Document) error
}

// IndexService pushes the documents of the daily store into the report index.
type IndexService struct {
	store  *daily.Store
	index  ReportIndexer
	logger *logging.Logger
}

func NewIndexService(store *daily.Store, index ReportIndexer, logger *logging.Logger) *IndexService {
	return &IndexService{store: store, index: index, logger: logger}
}

// IndexOne upserts a single report.
func (s *IndexService) IndexOne(ctx context.Context, slug string) error {
	doc, err := s.store.Get(slug)
	if err != nil {
		return err
	}
	return s.index.Upsert(ctx, typesense.NewDocument(doc))
}

// Reindex upserts every report with at most workers concurrent requests and
// returns how many were indexed. The first failure cancels the rest.
func (s *IndexService) Reindex(ctx context.Context, workers int) (int, error) {
	ctx, span := otel.Tracer("index").Start(ctx, "IndexService.Reindex")
	defer span.End()

	if workers <= 0 {
		workers = defaultWorkers
	}
	if err := s.index.EnsureCollection(ctx); err != nil {
		return 0, err
	}

	slugs, err := s.store.Slugs()
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.Int("index.reports", len(slugs)), attribute.Int("index.workers", workers))

	var indexed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, slug := range slugs {
		g.Go(func() error {
			if err := s.IndexOne(gctx, slug); err != nil {
				return fmt.Errorf("index %s: %w", slug, err)
			}
			indexed.Add(1)
			s.logger.Debug().Str("slug", slug).Msg("Report indexed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Int64("indexed", indexed.Load()).Msg("Reindex failed")
		return int(indexed.Load()), err
	}

	s.logger.Info().Int("indexed", len(slugs)).Int("workers", workers).Msg("Reindex completed")
	return len(slugs), nil
}
