package handlers

import (
	"net/http"

	"breakfastpos/internal/common"
	"breakfastpos/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AdminProductHandlers handles the admin menu management routes
type AdminProductHandlers struct {
	menuService services.MenuService
}

func NewAdminProductHandlers(menuService services.MenuService) *AdminProductHandlers {
	return &AdminProductHandlers{menuService: menuService}
}

// CreateProduct handles POST /api/admin/products
func (h *AdminProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		CategoryID  string          `json:"category_id"`
		Name        string          `json:"name"`
		Description *string         `json:"description"`
		Price       decimal.Decimal `json:"price"`
		Available   *bool           `json:"available"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	categoryID, err := common.ValidateUUID(req.CategoryID, "category_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	product, err := h.menuService.CreateProduct(ctx, &services.CreateProductRequest{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   req.Available,
	})
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccessWithStatus(c, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/admin/products/:id
func (h *AdminProductHandlers) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		CategoryID  string          `json:"category_id"`
		Name        string          `json:"name"`
		Description *string         `json:"description"`
		Price       decimal.Decimal `json:"price"`
		Available   bool            `json:"available"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	categoryID, err := common.ValidateUUID(req.CategoryID, "category_id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	product, err := h.menuService.UpdateProduct(ctx, id, &services.UpdateProductRequest{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   req.Available,
	})
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, product)
}

// DeleteProduct handles DELETE /api/admin/products/:id
func (h *AdminProductHandlers) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.menuService.DeleteProduct(ctx, id); err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, nil)
}

// ToggleAvailability handles PATCH /api/admin/products/:id/toggle
func (h *AdminProductHandlers) ToggleAvailability(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	product, err := h.menuService.ToggleAvailability(ctx, id)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, product)
}

// CreateCategory handles POST /api/admin/categories
func (h *AdminProductHandlers) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	var req services.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	category, err := h.menuService.CreateCategory(ctx, &req)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccessWithStatus(c, http.StatusCreated, category)
}

// DeleteCategory handles DELETE /api/admin/categories/:id
func (h *AdminProductHandlers) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "category id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.menuService.DeleteCategory(ctx, id); err != nil {
		return common.SendError(c, err)
	}
	return common.SendSuccess(c, nil)
}
