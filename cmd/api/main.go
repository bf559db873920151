package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/tw-event-radar/radar/docs"
	"github.com/tw-event-radar/radar/internal/api/routes"
	"github.com/tw-event-radar/radar/internal/archive"
	"github.com/tw-event-radar/radar/internal/config"
	"github.com/tw-event-radar/radar/internal/keywords"
	"github.com/tw-event-radar/radar/internal/logging"
	"github.com/tw-event-radar/radar/internal/notes"
	"github.com/tw-event-radar/radar/internal/observability"
	"github.com/tw-event-radar/radar/internal/typesense"
	"golang.org/x/sync/errgroup"
)

// version is set at build time via -ldflags.
var version = "dev"

// @title           台股事件雷達 API
// @version         1.0
// @description     Daily Taiwan stock event reports, monitored keywords and full-text search over Typesense

// @contact.name   Event Radar

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("RADAR_CONFIG"))
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.Tracing, "radar-api", version, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(sctx); err != nil {
			logger.Warn().Err(err).Msg("Tracer shutdown failed")
		}
	}()

	catalog, err := keywords.Default()
	if err != nil {
		return err
	}
	collection, err := notes.Load()
	if err != nil {
		return err
	}

	deps := routes.Deps{
		ContentDir: cfg.Report.ContentDir,
		Catalog:    catalog,
		Notes:      collection,
		Logger:     logger,
	}

	index, err := typesense.NewIndex(cfg.Typesense)
	switch {
	case errors.Is(err, typesense.ErrDisabled):
		logger.Info().Msg("Typesense API key not set, search disabled")
	case err != nil:
		return err
	default:
		if err := index.EnsureCollection(ctx); err != nil {
			logger.Warn().Err(err).Str("collection", index.Collection()).Msg("Typesense collection not ready")
		}
		deps.Index = index
	}

	if cfg.Archive.Path != "" {
		store, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		deps.Archive = store
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           routes.SetupRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().
			Str("port", cfg.Server.Port).
			Str("content_dir", cfg.Report.ContentDir).
			Str("search", enabled(deps.Index != nil)).
			Str("archive", enabled(deps.Archive != nil)).
			Msg("Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info().Msg("Shutting down server")
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}

func enabled(ok bool) string {
	if ok {
		return "enabled"
	}
	return "disabled"
}
