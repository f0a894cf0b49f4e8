package domain

import "errors"

var (
	ErrDuplicateEmail         = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrMissingCurrentPassword = errors.New("current password required to change password")
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
	ErrProductNotFound        = errors.New("product not found")
	ErrSessionNotFound        = errors.New("session not found")
	ErrDuplicateToken         = errors.New("session token already in use")
)
