package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/media-ingest/internal/adapter/handler"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/media-ingest/internal/pkg/httputil"
)

type Router struct {
	engine           *gin.Engine
	ingestHandler    *handler.IngestHandler
	ingestionHandler *handler.IngestionHandler
	rateLimiter      *middleware.RateLimiter
	logger           *zap.Logger
}

// RouterConfig wires the HTTP surface. IngestionHandler is nil when no audit
// database is configured and RateLimiter is nil when rate limiting is off.
type RouterConfig struct {
	IngestHandler    *handler.IngestHandler
	IngestionHandler *handler.IngestionHandler
	RateLimiter      *middleware.RateLimiter
	Logger           *zap.Logger
	Environment      string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:           engine,
		ingestHandler:    cfg.IngestHandler,
		ingestionHandler: cfg.IngestionHandler,
		rateLimiter:      cfg.RateLimiter,
		logger:           cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.engine.NoRoute(func(c *gin.Context) {
		httputil.Error(c, http.StatusNotFound, "route not found")
	})

	api := r.engine.Group("/api/v1")
	{
		ingest := api.Group("/ingest")
		if r.rateLimiter != nil {
			ingest.Use(r.rateLimiter.Limit())
		}
		ingest.POST("", r.ingestHandler.Ingest)

		if r.ingestionHandler != nil {
			api.GET("/ingestions", r.ingestionHandler.List)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
