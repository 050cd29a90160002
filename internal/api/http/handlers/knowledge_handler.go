package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-triage-service/internal/knowledge"
)

// KnowledgeHandler serves the self-service policy library search.
type KnowledgeHandler struct {
	library *knowledge.Library
}

// NewKnowledgeHandler constructs handler.
func NewKnowledgeHandler(library *knowledge.Library) *KnowledgeHandler {
	return &KnowledgeHandler{library: library}
}

// Search GET /api/knowledge-base/search.
func (h *KnowledgeHandler) Search(c *fiber.Ctx) error {
	results := h.library.Search(c.Query("q"))
	if results == nil {
		results = []knowledge.SearchResult{}
	}
	return c.JSON(fiber.Map{"data": results})
}
