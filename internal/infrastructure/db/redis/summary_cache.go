package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
)

const (
	summaryKey = "categorias:resumen"
	summaryTTL = 30 * time.Second
)

// SummaryCache holds the latest category summaries for a short TTL so
// repeated dashboard refreshes don't re-run the aggregation. Every
// failure is treated as a cache miss; the cache can never take the read
// path down.
type SummaryCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client, log zerolog.Logger) *SummaryCache {
	return &SummaryCache{client: client, log: log}
}

// Get returns the cached summaries and true on a hit.
func (c *SummaryCache) Get(ctx context.Context) ([]domain.CategorySummary, bool) {
	raw, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Debug().Err(err).Msg("summary cache read failed")
		}
		return nil, false
	}

	var summaries []domain.CategorySummary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		c.log.Debug().Err(err).Msg("summary cache entry corrupt")
		return nil, false
	}
	return summaries, true
}

// Set stores the summaries with the cache TTL.
func (c *SummaryCache) Set(ctx context.Context, summaries []domain.CategorySummary) {
	raw, err := json.Marshal(summaries)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, summaryKey, raw, summaryTTL).Err(); err != nil {
		c.log.Debug().Err(err).Msg("summary cache write failed")
	}
}
