package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

const msgInternal = "internal server error"

func errorResponse(c echo.Context, code int, msg string) error {
	return c.JSON(code, transport.ErrorResponse{Error: msg})
}

// failure maps a service error onto a status code and logs it under event.
// notFoundMsg is what the client sees for service.ErrNotFound.
func failure(c echo.Context, l *slog.Logger, event string, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		l.Warn(event, "status", http.StatusNotFound, "error", err)
		return errorResponse(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrValidation):
		l.Warn(event, "status", http.StatusBadRequest, "error", err)
		return errorResponse(c, http.StatusBadRequest, err.Error())
	default:
		l.Error(event, "status", http.StatusInternalServerError, "error", err)
		return errorResponse(c, http.StatusInternalServerError, msgInternal)
	}
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
