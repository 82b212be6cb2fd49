// Package httpapi exposes user history lookups over HTTP.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/permlog/internal/logging"
	"github.com/example/permlog/internal/ports/primary"
)

// HistoryHandler serves user history pages as JSON.
type HistoryHandler struct {
	service primary.HistoryService
	logger  *zap.Logger
}

// NewHistoryHandler creates a HistoryHandler backed by service.
func NewHistoryHandler(service primary.HistoryService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		service: service,
		logger:  logging.OrNop(logger),
	}
}

// Register mounts the handler's routes on r.
func (h *HistoryHandler) Register(r gin.IRouter) {
	r.GET("/health", h.Health)

	v1 := r.Group("/v1")
	{
		v1.GET("/history/:target", h.UserHistory)
	}
}

// NewRouter builds a gin engine serving h.
func NewRouter(h *HistoryHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	h.Register(r)
	return r
}

// Health reports liveness.
func (h *HistoryHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UserHistory handles GET /v1/history/:target?page=N.
// Without a page query parameter the most recent page is returned.
func (h *HistoryHandler) UserHistory(c *gin.Context) {
	req := primary.HistoryRequest{Target: c.Param("target")}
	if page, ok := c.GetQuery("page"); ok {
		req.Page = &page
	}

	result, err := h.service.UserHistory(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, req.Target, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *HistoryHandler) writeError(c *gin.Context, target string, err error) {
	var rangeErr *primary.PageOutOfRangeError
	switch {
	case errors.Is(err, primary.ErrInvalidTarget):
		h.logger.Debug("invalid history target", zap.String("target", target), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": primary.ErrInvalidTarget.Error()})
	case errors.Is(err, primary.ErrNoEntries):
		c.JSON(http.StatusNotFound, gin.H{"error": primary.ErrNoEntries.Error()})
	case errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": rangeErr.Error(), "max_page": rangeErr.MaxPage})
	default:
		h.logger.Error("user history failed", zap.String("target", target), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
