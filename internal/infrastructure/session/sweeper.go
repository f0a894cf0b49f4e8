package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Danjes623/Inventario-SIGI/internal/api/metrics"
)

const defaultInterval = 5 * time.Minute

// Store is the slice of the session repository the sweeper needs.
type Store interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper actively removes expired session rows on a fixed interval.
// MongoDB's TTL monitor does the same job eventually; the sweep narrows
// the window in which expired rows linger. Validation never depends on
// either — expiry is also checked at read time.
type Sweeper struct {
	store    Store
	interval time.Duration
	log      zerolog.Logger
}

// NewSweeper creates a Sweeper. If interval <= 0, defaultInterval is used.
func NewSweeper(store Store, interval time.Duration, log zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Sweeper{store: store, interval: interval, log: log}
}

// Start launches the sweep loop. It stops when ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.store.DeleteExpired(ctx, time.Now().UTC())
			if err != nil {
				s.log.Error().Err(err).Msg("expired session sweep failed")
				continue
			}
			if deleted > 0 {
				metrics.SessionsEndedTotal.WithLabelValues("expired").Add(float64(deleted))
				s.log.Debug().Int64("deleted", deleted).Msg("expired sessions swept")
			}
		}
	}
}
