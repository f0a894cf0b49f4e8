package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
)

// stubSessionRepo mirrors the store's replace semantics: one row per
// user, keyed by userID.
type stubSessionRepo struct {
	byUser map[string]*domain.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{byUser: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Replace(_ context.Context, session *domain.Session) error {
	for userID, existing := range r.byUser {
		if userID != session.UserID && existing.Token == session.Token {
			return domain.ErrDuplicateToken
		}
	}
	clone := *session
	r.byUser[session.UserID] = &clone
	return nil
}

func (r *stubSessionRepo) Find(_ context.Context, userID, token string) (*domain.Session, error) {
	session, ok := r.byUser[userID]
	if !ok || session.Token != token {
		return nil, domain.ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (r *stubSessionRepo) Delete(_ context.Context, userID, token string) error {
	if session, ok := r.byUser[userID]; ok && session.Token == token {
		delete(r.byUser, userID)
	}
	return nil
}

func (r *stubSessionRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.byUser))
	r.byUser = make(map[string]*domain.Session)
	return n, nil
}

func (r *stubSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for userID, session := range r.byUser {
		if session.Expired(now) {
			delete(r.byUser, userID)
			n++
		}
	}
	return n, nil
}

func TestSessionService_CreateAndValidate(t *testing.T) {
	svc := NewSessionService(newStubSessionRepo(), zerolog.Nop())
	ctx := context.Background()

	if err := svc.Create(ctx, "u1", "token-1"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	valid, err := svc.Validate(ctx, "u1", "token-1")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !valid {
		t.Fatalf("expected session to be valid")
	}
}

func TestSessionService_ValidateRequiresBothFields(t *testing.T) {
	svc := NewSessionService(newStubSessionRepo(), zerolog.Nop())
	ctx := context.Background()

	_ = svc.Create(ctx, "u1", "token-1")

	cases := []struct{ userID, token string }{
		{"u1", "other-token"},
		{"u2", "token-1"},
		{"", ""},
	}
	for _, tc := range cases {
		valid, err := svc.Validate(ctx, tc.userID, tc.token)
		if err != nil {
			t.Fatalf("validate(%q,%q) errored: %v", tc.userID, tc.token, err)
		}
		if valid {
			t.Fatalf("validate(%q,%q) = true, want false", tc.userID, tc.token)
		}
	}
}

// A second session for the same user displaces the first.
func TestSessionService_SingleSessionPerUser(t *testing.T) {
	svc := NewSessionService(newStubSessionRepo(), zerolog.Nop())
	ctx := context.Background()

	_ = svc.Create(ctx, "u1", "token-old")
	_ = svc.Create(ctx, "u1", "token-new")

	if valid, _ := svc.Validate(ctx, "u1", "token-old"); valid {
		t.Fatalf("displaced session must be invalid")
	}
	if valid, _ := svc.Validate(ctx, "u1", "token-new"); !valid {
		t.Fatalf("replacement session must be valid")
	}
}

func TestSessionService_Create_TokenCollision(t *testing.T) {
	svc := NewSessionService(newStubSessionRepo(), zerolog.Nop())
	ctx := context.Background()

	_ = svc.Create(ctx, "u1", "shared-token")
	if err := svc.Create(ctx, "u2", "shared-token"); err != domain.ErrDuplicateToken {
		t.Fatalf("expected ErrDuplicateToken, got %v", err)
	}
}

func TestSessionService_ExpiredSessionIsInvalid(t *testing.T) {
	repo := newStubSessionRepo()
	svc := NewSessionService(repo, zerolog.Nop())
	ctx := context.Background()

	// Plant an already-expired row directly; the store garbage-collects
	// lazily, so Validate must reject it on read.
	repo.byUser["u1"] = &domain.Session{
		UserID:    "u1",
		Token:     "stale",
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
		CreatedAt: time.Now().UTC().Add(-25 * time.Hour),
	}

	valid, err := svc.Validate(ctx, "u1", "stale")
	if err != nil {
		t.Fatalf("validate errored: %v", err)
	}
	if valid {
		t.Fatalf("expired session must be invalid")
	}
}

func TestSessionService_End_Idempotent(t *testing.T) {
	svc := NewSessionService(newStubSessionRepo(), zerolog.Nop())
	ctx := context.Background()

	_ = svc.Create(ctx, "u1", "token-1")

	if err := svc.End(ctx, "u1", "token-1"); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if err := svc.End(ctx, "u1", "token-1"); err != nil {
		t.Fatalf("repeat end must not error: %v", err)
	}
	if valid, _ := svc.Validate(ctx, "u1", "token-1"); valid {
		t.Fatalf("ended session must be invalid")
	}
}

func TestSessionService_EndBestEffort(t *testing.T) {
	repo := newStubSessionRepo()
	svc := NewSessionService(repo, zerolog.Nop())
	ctx := context.Background()

	_ = svc.Create(ctx, "u1", "token-1")

	// Garbage and partial payloads are swallowed without touching state.
	svc.EndBestEffort(ctx, []byte("not json"))
	svc.EndBestEffort(ctx, []byte(`{"userId":"u1"}`))
	svc.EndBestEffort(ctx, nil)
	if valid, _ := svc.Validate(ctx, "u1", "token-1"); !valid {
		t.Fatalf("session must survive malformed beacons")
	}

	svc.EndBestEffort(ctx, []byte(`{"userId":"u1","sessionId":"token-1"}`))
	if valid, _ := svc.Validate(ctx, "u1", "token-1"); valid {
		t.Fatalf("well-formed beacon must end the session")
	}
}

func TestSessionService_PurgeAll(t *testing.T) {
	svc := NewSessionService(newStubSessionRepo(), zerolog.Nop())
	ctx := context.Background()

	_ = svc.Create(ctx, "u1", "token-1")
	_ = svc.Create(ctx, "u2", "token-2")

	deleted, err := svc.PurgeAll(ctx)
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted, got %d", deleted)
	}
	if valid, _ := svc.Validate(ctx, "u1", "token-1"); valid {
		t.Fatalf("purged session must be invalid")
	}
}
