package domain

import (
	"math"
	"sort"
)

// Product is a catalog entry.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description,omitempty"`
}

// CategorySummary is the derived per-category statistic set. It is never
// persisted; both the store-side aggregation and the local fallback
// produce it with identical semantics.
type CategorySummary struct {
	Category   string
	Count      int
	TotalStock int
	TotalValue float64
}

// SummarizeByCategory groups products by exact category label and computes
// count, total stock, and total value (Σ price×stock rounded to 2
// decimals), sorted ascending by category. This is the local counterpart
// of the store aggregation pipeline; the two must stay in lockstep.
func SummarizeByCategory(products []Product) []CategorySummary {
	byCategory := make(map[string]*CategorySummary)
	for _, p := range products {
		s, ok := byCategory[p.Category]
		if !ok {
			s = &CategorySummary{Category: p.Category}
			byCategory[p.Category] = s
		}
		s.Count++
		s.TotalStock += p.Stock
		s.TotalValue += p.Price * float64(p.Stock)
	}

	summaries := make([]CategorySummary, 0, len(byCategory))
	for _, s := range byCategory {
		s.TotalValue = round2(s.TotalValue)
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Category < summaries[j].Category
	})
	return summaries
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
