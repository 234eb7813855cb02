package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultNewsCount = 3

type Handler struct {
	service WordService
	health  HealthChecker
}

// NewHandler creates a Handler. health may be nil.
func NewHandler(service WordService, health HealthChecker) *Handler {
	return &Handler{
		service: service,
		health:  health,
	}
}

func (h *Handler) GetWord(c *gin.Context) {
	word := c.Param("word")
	result, err := h.service.HandleWordQuery(c.Request.Context(), word)
	if err != nil {
		slog.Default().ErrorContext(c.Request.Context(), "word lookup failed",
			slog.String("word", word),
			slog.Any("error", err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetNews always answers 200 once the query is valid. Upstream failures are
// reported in the body.
func (h *Handler) GetNews(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "query is required"})
		return
	}
	count := defaultNewsCount
	if raw, ok := c.GetQuery("count"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "count must be an integer"})
			return
		}
		count = n
	}

	slog.Default().InfoContext(c.Request.Context(), "fetching news",
		slog.String("query", query),
		slog.Int("count", count),
	)
	c.JSON(http.StatusOK, h.service.News(c.Request.Context(), query))
}

func (h *Handler) Healthz(c *gin.Context) {
	if h.health != nil {
		if err := h.health.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "detail": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
