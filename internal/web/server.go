// Package web exposes the rendered map elements over HTTP. It is the shim a
// CMS integration calls instead of linking the module directly.
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mapfront/extension/internal/model"
	"github.com/mapfront/extension/internal/prefetch"
	"github.com/mapfront/extension/internal/render"
	"github.com/mapfront/extension/internal/translate"
)

// Server holds the handler dependencies.
type Server struct {
	renderer *render.Manager
	warmer   *prefetch.Warmer
	logger   *slog.Logger
}

// NewServer creates the HTTP surface. warmer may be nil when prefetch is
// disabled.
func NewServer(renderer *render.Manager, warmer *prefetch.Warmer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		renderer: renderer,
		warmer:   warmer,
		logger:   logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthcheck", s.handleHealthcheck)

	api := r.Group("/api/v1")
	{
		api.GET("/maps/:id", s.handleMapResult)
		api.GET("/maps/:id/element", s.handleMapElement)
		api.POST("/maps/:id/prefetch", s.handlePrefetch)
	}

	return r
}

func (s *Server) handleHealthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleMapResult returns the full render result as JSON: graph, markup and
// element metadata.
func (s *Server) handleMapResult(c *gin.Context) {
	id, ok := mapID(c)
	if !ok {
		return
	}

	result, err := s.renderer.Render(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleMapElement returns only the embeddable HTML snippet.
func (s *Server) handleMapElement(c *gin.Context) {
	id, ok := mapID(c)
	if !ok {
		return
	}

	result, err := s.renderer.Render(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, id, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(result.HTML))
}

// handlePrefetch warms the geocode cache for one map element.
func (s *Server) handlePrefetch(c *gin.Context) {
	if s.warmer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "prefetch is disabled"})
		return
	}

	id, ok := mapID(c)
	if !ok {
		return
	}

	resolved, err := s.warmer.WarmMap(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mapId": id, "resolved": resolved})
}

func (s *Server) renderError(c *gin.Context, id uint, err error) {
	var cfgErr *translate.ConfigError
	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "map element not found"})
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   cfgErr.Error(),
			"overlay": cfgErr.OverlayID,
		})
	default:
		s.logger.Error("Render failed", "mapId", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func mapID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid map element id"})
		return 0, false
	}
	return uint(id), true
}
