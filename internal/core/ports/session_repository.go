package ports

import (
	"context"
	"time"

	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
)

// SessionRepository defines persistence operations for session rows.
type SessionRepository interface {
	// Replace atomically swaps the user's session for the given one,
	// inserting if none exists. A concurrent reader can never observe two
	// live sessions for the same user.
	Replace(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, userID, token string) (*domain.Session, error)
	// Delete removes the matching session; absence is not an error.
	Delete(ctx context.Context, userID, token string) error
	DeleteAll(ctx context.Context) (int64, error)
	// DeleteExpired removes sessions whose expiry elapsed before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
