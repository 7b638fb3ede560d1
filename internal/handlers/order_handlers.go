package handlers

import (
	"net/http"

	"breakfastpos/internal/common"
	"breakfastpos/internal/services"

	"github.com/labstack/echo/v4"
)

// OrderHandlers handles HTTP requests for customer checkout
type OrderHandlers struct {
	orderService services.OrderService
}

func NewOrderHandlers(orderService services.OrderService) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

// Checkout handles POST /api/orders/checkout
func (h *OrderHandlers) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req services.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	// The header wins over the body field so HTTP clients can retry without
	// re-serializing the payload.
	if headerKey := c.Request().Header.Get("Idempotency-Key"); headerKey != "" {
		req.IdempotencyKey = &headerKey
	}

	order, err := h.orderService.PlaceOrder(ctx, &req)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccessWithStatus(c, http.StatusCreated, order)
}
