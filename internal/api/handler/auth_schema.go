package handler

import "github.com/Danjes623/Inventario-SIGI/internal/core/domain"

// errorResponse documents the standard error envelope rendered by the
// central error handler on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name            string                   `json:"name"`
	Email           string                   `json:"email" validate:"omitempty,email"`
	CurrentPassword string                   `json:"currentPassword"`
	NewPassword     string                   `json:"newPassword"`
	Preferences     *domain.PreferencesPatch `json:"preferences"`
}

// authResponse wraps the public user view. Token is only present on
// login; the password hash never appears because domain.User carries no
// password field at all.
type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user"`
}
