package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Danjes623/Inventario-SIGI/internal/api/metrics"
	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
	"github.com/Danjes623/Inventario-SIGI/internal/core/ports"
)

// SummaryCache abstracts the short-lived summary cache (Redis). A failed
// lookup is a miss, never an error.
type SummaryCache interface {
	Get(ctx context.Context) ([]domain.CategorySummary, bool)
	Set(ctx context.Context, summaries []domain.CategorySummary)
}

// CategoryService serves per-category statistics through two
// interchangeable strategies: the store-side aggregation and a local
// recompute over the raw product list. The strategy is selected at call
// time by availability; degradation to the fallback is silent.
type CategoryService struct {
	primary  ports.CategorySummaryProvider
	fallback ports.CategorySummaryProvider
	cache    SummaryCache // optional
	logger   zerolog.Logger
}

func NewCategoryService(primary, fallback ports.CategorySummaryProvider, cache SummaryCache, logger zerolog.Logger) *CategoryService {
	return &CategoryService{primary: primary, fallback: fallback, cache: cache, logger: logger}
}

// ListCategorySummaries returns summaries sorted ascending by category.
// It fails only when both strategies are unavailable.
func (s *CategoryService) ListCategorySummaries(ctx context.Context) ([]domain.CategorySummary, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			metrics.CategorySummariesTotal.WithLabelValues("cache").Inc()
			return cached, nil
		}
	}

	summaries, err := s.primary.CategorySummaries(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("category aggregation unavailable, recomputing from product list")
		summaries, err = s.fallback.CategorySummaries(ctx)
		if err != nil {
			return nil, err
		}
		metrics.CategorySummariesTotal.WithLabelValues("fallback").Inc()
	} else {
		metrics.CategorySummariesTotal.WithLabelValues("aggregate").Inc()
	}

	if s.cache != nil {
		s.cache.Set(ctx, summaries)
	}
	return summaries, nil
}

// localSummaryProvider recomputes category statistics from the full
// product list using the same formulas and rounding as the store
// pipeline, so either path yields identical results.
type localSummaryProvider struct {
	repo ports.ProductRepository
}

// NewLocalSummaryProvider returns the fallback strategy backed by repo.
func NewLocalSummaryProvider(repo ports.ProductRepository) ports.CategorySummaryProvider {
	return &localSummaryProvider{repo: repo}
}

func (p *localSummaryProvider) CategorySummaries(ctx context.Context) ([]domain.CategorySummary, error) {
	products, err := p.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SummarizeByCategory(products), nil
}
