// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/espacenaturae/storefront-backend/internal/models"
	"github.com/espacenaturae/storefront-backend/internal/services"
	"github.com/espacenaturae/storefront-backend/internal/utils"
)

type CartHandler struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
}

type AddItemRequest struct {
	ProductID   string  `json:"product_id" validate:"required"`
	OptionLabel *string `json:"option_label,omitempty"`
	Quantity    int     `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

type UpdateItemRequest struct {
	ProductID   string  `json:"product_id" validate:"required"`
	OptionLabel *string `json:"option_label,omitempty"`
	Delta       int     `json:"delta" validate:"required"`
}

type RemoveItemRequest struct {
	ProductID   string  `json:"product_id" validate:"required"`
	OptionLabel *string `json:"option_label,omitempty"`
}

func NewCartHandler(cartService *services.CartService, catalogService *services.CatalogService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
	}
}

func (h *CartHandler) cartPayload(sessionID string) gin.H {
	return gin.H{
		"items": h.cartService.Items(sessionID),
		"total": h.cartService.Total(sessionID),
		"count": h.cartService.Count(sessionID),
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	utils.SuccessResponse(c, h.cartPayload(sessionID(c)))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
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

	var option *models.ProductOption
	if req.OptionLabel != nil {
		declared, ok := product.Option(*req.OptionLabel)
		if !ok {
			utils.NotFoundResponse(c, "product option")
			return
		}
		option = declared
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	opened := h.cartService.AddItem(sessionID(c), product, option, quantity)

	payload := h.cartPayload(sessionID(c))
	payload["cart_opened"] = opened
	utils.SuccessResponse(c, payload)
}

// PATCH /cart/items
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	h.cartService.UpdateQuantity(sessionID(c), req.ProductID, req.OptionLabel, req.Delta)
	utils.SuccessResponse(c, h.cartPayload(sessionID(c)))
}

// DELETE /cart/items
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	h.cartService.RemoveItem(sessionID(c), req.ProductID, req.OptionLabel)
	utils.SuccessResponse(c, h.cartPayload(sessionID(c)))
}

func sessionID(c *gin.Context) string {
	id, _ := utils.GetSessionIDFromContext(c)
	return id
}
