package ports

import "context"

type SessionService interface {
	// Create registers a session for userID, replacing any existing one.
	Create(ctx context.Context, userID, token string) error
	// Validate reports whether a non-expired session matches both fields.
	// An absent or expired session yields (false, nil), not an error.
	Validate(ctx context.Context, userID, token string) (bool, error)
	// End removes the session; it is idempotent.
	End(ctx context.Context, userID, token string) error
	// EndBestEffort parses an unvalidated beacon payload and attempts the
	// same deletion. It never fails from the caller's perspective.
	EndBestEffort(ctx context.Context, rawBody []byte)
	// PurgeAll removes every session and returns the number deleted.
	PurgeAll(ctx context.Context) (int64, error)
}
