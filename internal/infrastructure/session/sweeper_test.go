package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type countingStore struct {
	calls atomic.Int64
}

func (s *countingStore) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	s.calls.Add(1)
	return 1, nil
}

func TestSweeper_SweepsOnInterval(t *testing.T) {
	store := &countingStore{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewSweeper(store, 10*time.Millisecond, zerolog.Nop()).Start(ctx)

	deadline := time.After(2 * time.Second)
	for store.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("sweeper ran %d times, expected at least 2", store.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSweeper_StopsOnCancel(t *testing.T) {
	store := &countingStore{}
	ctx, cancel := context.WithCancel(context.Background())

	NewSweeper(store, 5*time.Millisecond, zerolog.Nop()).Start(ctx)

	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	after := store.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if got := store.calls.Load(); got != after {
		t.Fatalf("sweeper kept running after cancel: %d -> %d", after, got)
	}
}

func TestNewSweeper_DefaultInterval(t *testing.T) {
	s := NewSweeper(&countingStore{}, 0, zerolog.Nop())
	if s.interval != defaultInterval {
		t.Fatalf("expected default interval, got %v", s.interval)
	}
}
