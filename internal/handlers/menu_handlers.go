package handlers

import (
	"strconv"

	"breakfastpos/internal/common"
	"breakfastpos/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MenuHandlers serves the customer-facing menu reads.
type MenuHandlers struct {
	menuService services.MenuService
}

func NewMenuHandlers(menuService services.MenuService) *MenuHandlers {
	return &MenuHandlers{menuService: menuService}
}

// ListProducts handles GET /api/menu/products
func (h *MenuHandlers) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var categoryID *uuid.UUID
	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := common.ValidateUUID(raw, "category_id")
		if err != nil {
			return common.SendClientError(c, err.Error())
		}
		categoryID = &id
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	products, err := h.menuService.ListProducts(ctx, categoryID, limit, offset)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, products)
}

// GetProduct handles GET /api/menu/products/:id
func (h *MenuHandlers) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	product, err := h.menuService.GetProduct(ctx, id)
	if err != nil {
		return common.SendError(c, err)
	}
	if product == nil {
		return common.SendError(c, common.NewNotFound("product not found with id: %s", id))
	}
	return common.SendSuccess(c, product)
}

// ListCategories handles GET /api/menu/categories
func (h *MenuHandlers) ListCategories(c echo.Context) error {
	categories, err := h.menuService.ListCategories(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, categories)
}
