package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Client-facing messages are in Spanish; the shipped frontend displays
// them verbatim.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Credential errors
	// deliberately share one generic message so callers cannot tell an
	// unknown email from a wrong password.
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusBadRequest, "ya existe un usuario con este correo electrónico"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "correo electrónico o contraseña incorrectos"
	case errors.Is(err, domain.ErrMissingCurrentPassword):
		return http.StatusBadRequest, "debes ingresar la contraseña actual para cambiarla"
	case errors.Is(err, domain.ErrInvalidCurrentPassword):
		return http.StatusBadRequest, "la contraseña actual es incorrecta"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "usuario no encontrado"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "producto no encontrado"
	}

	// Unexpected error (ErrDuplicateToken included): log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "error del servidor"
}
