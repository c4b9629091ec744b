package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home answers the root path with a plain-text greeting.
func (h *Handler) Home(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to The Gym")
}
