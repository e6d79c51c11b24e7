// internal/handlers/glossary.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/espacenaturae/storefront-backend/internal/services"
	"github.com/espacenaturae/storefront-backend/internal/utils"
)

type GlossaryHandler struct {
	catalogService *services.CatalogService
}

func NewGlossaryHandler(catalogService *services.CatalogService) *GlossaryHandler {
	return &GlossaryHandler{catalogService: catalogService}
}

// GET /glossary?letter=C
func (h *GlossaryHandler) GetGlossary(c *gin.Context) {
	letter := c.Query("letter")

	utils.SuccessResponseWithMeta(c, h.catalogService.GlossaryItems(letter), gin.H{
		"letter": letter,
	})
}

// GET /glossary/letters
func (h *GlossaryHandler) GetLetters(c *gin.Context) {
	utils.SuccessResponse(c, h.catalogService.GlossaryLetters())
}
