package ports

import (
	"context"

	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateProfileInput carries a partial profile update. Empty strings mean
// "leave unchanged"; a nil Preferences patch leaves preferences alone.
type UpdateProfileInput struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
	Preferences     *domain.PreferencesPatch
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// public user view. Unknown email and wrong password fail identically.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}
