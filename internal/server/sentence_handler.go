package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/sentencelab/internal/sentence"
)

// GET /api/generated-sentences?tag_id=&politeness=&difficulty=&favorite=&limit=&offset=
func (s *Server) listGeneratedSentences(c *gin.Context) {
	var tagID int64
	if raw := c.Query("tag_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag_id"})
			return
		}
		tagID = id
	}
	favorite := c.Query("favorite")

	filter := sentence.ListFilter{
		TagID:           tagID,
		PolitenessLevel: c.Query("politeness"),
		Difficulty:      c.Query("difficulty"),
		FavoriteOnly:    favorite == "1" || favorite == "true",
		Limit:           parseIntDefault(c.Query("limit"), 20),
		Offset:          parseIntDefault(c.Query("offset"), 0),
	}

	sentences, total, err := s.sentences.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("list generated sentences failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list generated sentences failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sentences, "total": total})
}

type favoriteRequest struct {
	IsFavorite bool `json:"isFavorite"`
}

// POST /api/generated-sentences/:id/favorite
func (s *Server) toggleFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.sentences.SetFavorite(c.Request.Context(), id, req.IsFavorite); err != nil {
		if errors.Is(err, sentence.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sentence not found"})
			return
		}
		slog.Error("update favorite flag failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update favorite failed"})
		return
	}

	flag := 0
	if req.IsFavorite {
		flag = 1
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id, "is_favorite": flag})
}

type practiceRequest struct {
	GeneratedSentenceID int64   `json:"generatedSentenceId"`
	Result              *string `json:"result"`
	Notes               *string `json:"notes"`
}

// POST /api/practice
func (s *Server) addPractice(c *gin.Context) {
	var req practiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.GeneratedSentenceID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "generatedSentenceId is required"})
		return
	}

	entry := &sentence.PracticeEntry{
		GeneratedSentenceID: req.GeneratedSentenceID,
		Result:              req.Result,
		Notes:               req.Notes,
	}
	if err := s.sentences.AddPractice(c.Request.Context(), entry); err != nil {
		slog.Error("insert practice history failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "record practice failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": entry.ID})
}
