package handlers

import (
	"strconv"

	"breakfastpos/internal/common"
	"breakfastpos/internal/services"

	"github.com/labstack/echo/v4"
)

// AdminOrderHandlers handles the staff order board routes
type AdminOrderHandlers struct {
	adminOrderService services.AdminOrderService
}

func NewAdminOrderHandlers(adminOrderService services.AdminOrderService) *AdminOrderHandlers {
	return &AdminOrderHandlers{adminOrderService: adminOrderService}
}

// ListOrders handles GET /api/admin/orders
func (h *AdminOrderHandlers) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	orders, err := h.adminOrderService.ListOrders(ctx, limit, offset)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, orders)
}

// GetOrder handles GET /api/admin/orders/:id
func (h *AdminOrderHandlers) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	order, err := h.adminOrderService.GetOrder(ctx, id)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, order)
}

// UpdateStatus handles PUT /api/admin/orders/:id/status
func (h *AdminOrderHandlers) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	order, err := h.adminOrderService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, order)
}
