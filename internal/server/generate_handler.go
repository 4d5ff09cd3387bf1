package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/sentencelab/internal/generator"
)

//go:generate mockgen -source=generate_handler.go -destination=../mocks/server/mock_generator.go -package=mock_server SentenceGenerator

// SentenceGenerator generates and persists one practice sentence per call.
type SentenceGenerator interface {
	Generate(ctx context.Context, req generator.Request) (*generator.Result, error)
}

type generateRequest struct {
	TagID           int64  `json:"tagId"`
	TemplateID      int64  `json:"templateId"`
	Difficulty      string `json:"difficulty"`
	JLPTLevel       string `json:"jlptLevel"`
	PolitenessLevel string `json:"politenessLevel"`
	DisplayField    string `json:"displayField" binding:"omitempty,oneof=kanji furigana romaji meaning"`
}

// POST /api/generate
func (s *Server) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.generator.Generate(c.Request.Context(), generator.Request{
		TagID:           req.TagID,
		TemplateID:      req.TemplateID,
		Difficulty:      req.Difficulty,
		JLPTLevel:       req.JLPTLevel,
		PolitenessLevel: req.PolitenessLevel,
		DisplayField:    generator.DisplayField(req.DisplayField),
	})
	if err != nil {
		s.writeGenerateError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) writeGenerateError(c *gin.Context, err error) {
	var unsatisfiable *generator.UnsatisfiableSlotError
	switch {
	case errors.As(err, &unsatisfiable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "slot": unsatisfiable.SlotName})
	case errors.Is(err, generator.ErrTagRequired),
		errors.Is(err, generator.ErrNoActiveTemplates),
		errors.Is(err, generator.ErrNoSlots):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, generator.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		slog.Error("sentence generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed"})
	}
}
