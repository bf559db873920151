package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tw-event-radar/radar/internal/api/handlers"
	"github.com/tw-event-radar/radar/internal/archive"
	"github.com/tw-event-radar/radar/internal/daily"
	"github.com/tw-event-radar/radar/internal/keywords"
	"github.com/tw-event-radar/radar/internal/logging"
	middlewares "github.com/tw-event-radar/radar/internal/middleware"
	"github.com/tw-event-radar/radar/internal/notes"
	"github.com/tw-event-radar/radar/internal/services"
	"github.com/tw-event-radar/radar/internal/typesense"
)

// Deps are the backends behind the read API. Index and Archive are optional.
type Deps struct {
	ContentDir string
	Catalog    *keywords.Catalog
	Notes      *notes.Collection
	Index      *typesense.Index
	Archive    *archive.Store
	Logger     *logging.Logger
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestTiming())
	if deps.Logger != nil {
		r.Use(middlewares.RequestLogger(deps.Logger))
	}

	store := daily.NewStore(deps.ContentDir)

	// nil pointers must not reach the handlers as non-nil interfaces
	var searcher handlers.ReportSearcher
	var checker handlers.HealthChecker
	if deps.Index != nil {
		searcher = deps.Index
		checker = deps.Index
	}
	var summaries handlers.SummaryLister
	if deps.Archive != nil {
		summaries = deps.Archive
	}

	dailyHandler := handlers.NewDailyHandler(store)
	keywordHandler := handlers.NewKeywordHandler(services.NewKeywordService(deps.Catalog, store.Dir()))
	summaryHandler := handlers.NewSummaryHandler(summaries)
	searchHandler := handlers.NewSearchHandler(searcher)
	notesHandler := handlers.NewNotesHandler(deps.Notes)
	healthHandler := handlers.NewHealthHandler(store.Dir(), checker)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	api := r.Group("/api/v1")
	{
		api.GET("/daily", dailyHandler.List)
		api.GET("/daily/latest", dailyHandler.Latest)
		api.GET("/daily/:slug", dailyHandler.Get)
		api.GET("/keywords", keywordHandler.Index)
		api.GET("/summaries", summaryHandler.List)
		api.GET("/search", searchHandler.Search)
		api.GET("/notes", notesHandler.List)
		api.GET("/notes/:slug", notesHandler.Get)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
