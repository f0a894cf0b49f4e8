package ports

import (
	"context"

	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
)

// UserRepository defines the interface for account persistence. It deals
// exclusively in UserRecord so the password hash never leaves the
// service/repository boundary.
type UserRepository interface {
	Create(ctx context.Context, record *domain.UserRecord) (*domain.UserRecord, error)
	FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
	FindByID(ctx context.Context, id string) (*domain.UserRecord, error)
	Update(ctx context.Context, record *domain.UserRecord) (*domain.UserRecord, error)
}
