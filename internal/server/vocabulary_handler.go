package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/sentencelab/internal/vocabulary"
)

// GET /api/vocabulary?topic=&subtopic=&politeness=&jlpt=&difficulty=&part_of_speech=&limit=&offset=
func (s *Server) listVocabulary(c *gin.Context) {
	filter := vocabulary.Filter{
		Topic:           c.Query("topic"),
		Subtopic:        c.Query("subtopic"),
		PolitenessLevel: c.Query("politeness"),
		JLPTLevel:       c.Query("jlpt"),
		Difficulty:      c.Query("difficulty"),
		PartOfSpeech:    c.Query("part_of_speech"),
	}
	limit := parseIntDefault(c.Query("limit"), 20)
	offset := parseIntDefault(c.Query("offset"), 0)

	entries, total, err := s.vocab.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		slog.Error("list vocabulary failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list vocabulary failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries, "total": total})
}
