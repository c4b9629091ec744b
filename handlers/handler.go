package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/schema"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db bun.IDB
}

// New creates a Handler with the given database connection.
func New(db bun.IDB) *Handler {
	return &Handler{db: db}
}

type message struct {
	Message string `json:"message"`
}

// pathID parses an id path parameter. Only plain digits match a resource;
// signs, spaces and anything else answer 404.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 31)
	if err != nil {
		return 0, echo.ErrNotFound
	}
	return int(id), nil
}

// bindPayload decodes the request body into dst and runs the registered
// validator. Returned Errors are ready to send as a 400 body.
func bindPayload(c echo.Context, dst any) (schema.Errors, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer c.Request().Body.Close()

	unknown := schema.Bind(body, dst)
	if _, ok := unknown[schema.SchemaKey]; ok {
		return unknown, nil
	}

	var invalid schema.Errors
	if err := c.Validate(dst); err != nil {
		if !errors.As(err, &invalid) {
			return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return schema.Merge(unknown, invalid), nil
}
