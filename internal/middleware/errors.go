package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorBody mirrors the handler error shape so every failure reads the same
type errorBody struct {
	Error string `json:"error"`
}

// tooManyRequestsError creates a rate limit error response
func tooManyRequestsError(c echo.Context, detail string) error {
	return c.JSON(http.StatusTooManyRequests, errorBody{Error: detail})
}
