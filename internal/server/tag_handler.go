package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /api/tags?search=&type=
func (s *Server) listTags(c *gin.Context) {
	tags, err := s.tags.FindAll(c.Request.Context(), c.Query("search"), c.Query("type"))
	if err != nil {
		slog.Error("list tags failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list tags failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tags})
}

// GET /api/tags/:id
// Returns the tag together with its direct children and vocabulary mappings.
func (s *Server) getTag(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx := c.Request.Context()
	t, err := s.tags.FindByID(ctx, id)
	if err != nil {
		slog.Error("load tag failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load tag failed"})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return
	}

	children, err := s.tags.Children(ctx, id)
	if err != nil {
		slog.Error("load child tags failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load tag failed"})
		return
	}
	mappings, err := s.tags.MappingsByTag(ctx, id)
	if err != nil {
		slog.Error("load tag mappings failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load tag failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         t,
		"is_top_level": t.IsTopLevel(),
		"children":     children,
		"mappings":     mappings,
	})
}

// GET /api/tag-mappings
func (s *Server) listTagMappings(c *gin.Context) {
	rows, err := s.tags.ListMappings(c.Request.Context())
	if err != nil {
		slog.Error("list tag mappings failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list tag mappings failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
