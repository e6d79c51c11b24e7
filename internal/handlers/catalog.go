// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/espacenaturae/storefront-backend/internal/services"
	"github.com/espacenaturae/storefront-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	utils.SuccessResponse(c, h.catalogService.Products())
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, found := h.catalogService.Product(c.Param("id"))
	if !found {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, product)
}
