// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/espacenaturae/storefront-backend/internal/services"
	"github.com/espacenaturae/storefront-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /orders/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	mail, err := h.orderService.Checkout(sessionID(c))
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.ConflictResponse(c, "Cart is empty")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, mail)
}

// POST /contact
func (h *OrderHandler) Contact(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	utils.SuccessResponse(c, h.orderService.ComposeContact(&req))
}
