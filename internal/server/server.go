// Package server exposes word lookups and news over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/wordlens/internal/config"
	"github.com/at-ishikawa/wordlens/internal/lookup"
	"github.com/at-ishikawa/wordlens/internal/news"
)

//go:generate mockgen -source=server.go -destination=../mocks/server/mock_server.go -package=mock_server

type WordService interface {
	HandleWordQuery(ctx context.Context, word string) (lookup.EnrichedResult, error)
	News(ctx context.Context, query string) news.Outcome
}

type HealthChecker interface {
	PingContext(ctx context.Context) error
}

const (
	IndexPath  = "/static/index.html"
	staticPath = "/static"
)

// Endpoints lists the served routes for startup logging.
var Endpoints = []string{
	"GET /api/word/:word",
	"GET /api/news?query=:word&count=:n",
	"GET " + IndexPath,
	"GET /healthz",
}

// NewRouter wires the handlers, middleware and the static page.
func NewRouter(cfg config.ServerConfig, handler *Handler, static http.FileSystem) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		loggingMiddleware(),
		corsMiddleware(cfg.CORS.AllowedOrigins),
	)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, IndexPath)
	})
	router.StaticFS(staticPath, static)
	router.GET("/healthz", handler.Healthz)

	api := router.Group("/api")
	api.GET("/word/:word", handler.GetWord)
	api.GET("/news", handler.GetNews)

	return router
}

// New creates the HTTP server for router.
func New(cfg config.ServerConfig, router http.Handler) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}
}
