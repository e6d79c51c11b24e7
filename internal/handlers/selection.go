// internal/handlers/selection.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/espacenaturae/storefront-backend/internal/services"
	"github.com/espacenaturae/storefront-backend/internal/utils"
)

type SelectionHandler struct {
	selectionService *services.SelectionService
	catalogService   *services.CatalogService
}

type SelectProductRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type SetOptionRequest struct {
	Label string `json:"label" validate:"required"`
}

type AdjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

func NewSelectionHandler(selectionService *services.SelectionService, catalogService *services.CatalogService) *SelectionHandler {
	return &SelectionHandler{
		selectionService: selectionService,
		catalogService:   catalogService,
	}
}

// GET /selection
func (h *SelectionHandler) GetSelection(c *gin.Context) {
	utils.SuccessResponse(c, h.selectionService.State(sessionID(c)))
}

// POST /selection/product
func (h *SelectionHandler) SelectProduct(c *gin.Context) {
	var req SelectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	product, found := h.catalogService.Product(req.ProductID)
	if !found {
		utils.NotFoundResponse(c, "product")
		return
	}

	h.selectionService.SelectProduct(sessionID(c), product)
	utils.SuccessResponse(c, h.selectionService.State(sessionID(c)))
}

// POST /selection/option
func (h *SelectionHandler) SetOption(c *gin.Context) {
	var req SetOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	if !h.selectionService.SetActiveOption(sessionID(c), req.Label) {
		utils.NotFoundResponse(c, "product option")
		return
	}

	utils.SuccessResponse(c, h.selectionService.State(sessionID(c)))
}

// POST /selection/quantity
func (h *SelectionHandler) AdjustQuantity(c *gin.Context) {
	var req AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	h.selectionService.AdjustQuantity(sessionID(c), req.Delta)
	utils.SuccessResponse(c, h.selectionService.State(sessionID(c)))
}
