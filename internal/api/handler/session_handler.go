package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Danjes623/Inventario-SIGI/internal/core/ports"
)

// SessionHandler handles HTTP requests for the session lifecycle.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type sessionRequest struct {
	UserID    string `json:"userId"    validate:"required"`
	SessionID string `json:"sessionId" validate:"required"`
}

type validateSessionResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// RegisterSession stores a new session for the user, replacing any
// existing one.
//
// @Summary      Register a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      sessionRequest  true  "Session identifiers"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register-session [post]
func (h *SessionHandler) RegisterSession(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Create(c.Request().Context(), req.UserID, req.SessionID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Sesión registrada correctamente"})
}

// ValidateSession reports whether the session is live. An absent or
// expired session is a 401 with valid:false, not an error.
//
// @Summary      Validate a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      sessionRequest  true  "Session identifiers"
// @Success      200   {object}  validateSessionResponse
// @Failure      401   {object}  validateSessionResponse
// @Router       /auth/validate-session [post]
func (h *SessionHandler) ValidateSession(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, validateSessionResponse{Valid: false, Error: "Sesión no válida"})
	}

	valid, err := h.service.Validate(c.Request().Context(), req.UserID, req.SessionID)
	if err != nil {
		return err
	}
	if !valid {
		return c.JSON(http.StatusUnauthorized, validateSessionResponse{Valid: false, Error: "Sesión no válida"})
	}

	return c.JSON(http.StatusOK, validateSessionResponse{Valid: true, Message: "Sesión válida"})
}

// Logout ends the session. Deleting an absent session still succeeds.
//
// @Summary      Logout
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      sessionRequest  true  "Session identifiers"
// @Success      200   {object}  messageResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if req.UserID != "" && req.SessionID != "" {
		if err := h.service.End(c.Request().Context(), req.UserID, req.SessionID); err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Sesión cerrada correctamente"})
}

// LogoutBeacon handles fire-and-forget logout signals (navigator.sendBeacon
// ships an unvalidated text body). It always acknowledges with 200; no
// client is waiting on the result.
//
// @Summary      Logout beacon
// @Tags         sessions
// @Accept       plain
// @Success      200
// @Router       /auth/logout-beacon [post]
func (h *SessionHandler) LogoutBeacon(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err == nil {
		h.service.EndBestEffort(c.Request().Context(), body)
	}
	return c.NoContent(http.StatusOK)
}

// CleanupSessions removes every session. Admin-only; the same purge runs
// unauthenticated at process start.
//
// @Summary      Purge all sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /auth/cleanup-sessions [post]
func (h *SessionHandler) CleanupSessions(c echo.Context) error {
	if _, err := h.service.PurgeAll(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Todas las sesiones han sido limpiadas"})
}
