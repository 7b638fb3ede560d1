package handlers

import (
	"breakfastpos/internal/common"
	"breakfastpos/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles HTTP requests for staff authentication
type AuthHandlers struct {
	authService services.AuthService
}

func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// Login handles POST /api/auth/login
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	resp, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if common.KindOf(err) == common.KindInvalidRequest {
			return common.SendUnauthorized(c, "invalid username or password")
		}
		return common.SendError(c, err)
	}

	return common.SendSuccess(c, resp)
}
