package common

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// APIResponse is the uniform envelope for every endpoint.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// SendSuccess writes a 200 envelope around data.
func SendSuccess(c echo.Context, data interface{}) error {
	return SendSuccessWithStatus(c, http.StatusOK, data)
}

// SendSuccessWithStatus writes a success envelope with an explicit status.
func SendSuccessWithStatus(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, APIResponse{
		Success:   true,
		Message:   "Operation Successful",
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
}

// SendError maps a service error onto the envelope and the status code its
// kind implies.
func SendError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal Server Error"

	var appErr *AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		switch appErr.Kind {
		case KindInvalidRequest:
			status = http.StatusBadRequest
		case KindNotFound:
			status = http.StatusNotFound
		case KindConflict:
			status = http.StatusConflict
		}
	}

	return c.JSON(status, APIResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
}

// SendClientError writes a 400 envelope for malformed request payloads.
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, APIResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
}

// SendUnauthorized writes a 401 envelope.
func SendUnauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, APIResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
}
