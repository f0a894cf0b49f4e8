package ports

import (
	"context"

	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
)

// ProductInput carries the mutable fields of a catalog entry.
type ProductInput struct {
	Name        string
	Category    string
	Price       float64
	Stock       int
	Description string
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
