// Package server provides the HTTP API for browsing stored data and
// generating practice sentences.
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/sentencelab/internal/config"
	"github.com/at-ishikawa/sentencelab/internal/sentence"
	"github.com/at-ishikawa/sentencelab/internal/tag"
	"github.com/at-ishikawa/sentencelab/internal/template"
	"github.com/at-ishikawa/sentencelab/internal/vocabulary"
)

// Server holds the HTTP handlers' dependencies.
type Server struct {
	generator SentenceGenerator
	tags      tag.Repository
	vocab     vocabulary.Repository
	templates template.Repository
	sentences sentence.Repository
	cors      config.CORSConfig
}

// New creates a Server.
func New(
	generator SentenceGenerator,
	tags tag.Repository,
	vocab vocabulary.Repository,
	templates template.Repository,
	sentences sentence.Repository,
	cors config.CORSConfig,
) *Server {
	return &Server{
		generator: generator,
		tags:      tags,
		vocab:     vocab,
		templates: templates,
		sentences: sentences,
		cors:      cors,
	}
}

// Router builds the gin router with all API routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.Use(corsMiddleware(s.cors.AllowedOrigins))

	api := router.Group("/api")
	api.GET("/health", s.health)
	api.GET("/tags", s.listTags)
	api.GET("/tags/:id", s.getTag)
	api.GET("/tag-mappings", s.listTagMappings)
	api.GET("/sentence-templates", s.listTemplates)
	api.GET("/template-slots", s.listTemplateSlots)
	api.GET("/vocabulary", s.listVocabulary)
	api.GET("/generated-sentences", s.listGeneratedSentences)
	api.POST("/generated-sentences/:id/favorite", s.toggleFavorite)
	api.POST("/practice", s.addPractice)
	api.POST("/generate", s.generate)

	return router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origins[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
			c.Header("Access-Control-Max-Age", "3600")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// parseIntDefault parses a query parameter, falling back when absent or malformed.
func parseIntDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
