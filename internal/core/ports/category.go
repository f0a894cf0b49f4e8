package ports

import (
	"context"

	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
)

// CategorySummaryProvider is one strategy for computing per-category
// statistics. The store-side aggregation and the local recompute both
// satisfy it and must return identical results for the same catalog.
type CategorySummaryProvider interface {
	CategorySummaries(ctx context.Context) ([]domain.CategorySummary, error)
}

type CategoryService interface {
	// ListCategorySummaries returns summaries sorted ascending by category.
	// An empty catalog yields an empty slice, not an error.
	ListCategorySummaries(ctx context.Context) ([]domain.CategorySummary, error)
}
