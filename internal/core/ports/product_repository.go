package ports

import (
	"context"

	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog entries.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
