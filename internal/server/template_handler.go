package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /api/sentence-templates?tag_id=&limit=&offset=
func (s *Server) listTemplates(c *gin.Context) {
	var tagID int64
	if raw := c.Query("tag_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag_id"})
			return
		}
		tagID = id
	}
	limit := parseIntDefault(c.Query("limit"), 20)
	offset := parseIntDefault(c.Query("offset"), 0)

	templates, total, err := s.templates.List(c.Request.Context(), tagID, limit, offset)
	if err != nil {
		slog.Error("list sentence templates failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list sentence templates failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": templates, "total": total})
}

// GET /api/template-slots?template_id=&limit=&offset=
func (s *Server) listTemplateSlots(c *gin.Context) {
	templateID, err := strconv.ParseInt(c.Query("template_id"), 10, 64)
	if err != nil || templateID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "template_id is required"})
		return
	}
	limit := parseIntDefault(c.Query("limit"), 100)
	offset := parseIntDefault(c.Query("offset"), 0)

	slots, err := s.templates.SlotsByTemplate(c.Request.Context(), templateID)
	if err != nil {
		slog.Error("list template slots failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list template slots failed"})
		return
	}

	total := len(slots)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	c.JSON(http.StatusOK, gin.H{"data": slots[offset:end], "total": total})
}
