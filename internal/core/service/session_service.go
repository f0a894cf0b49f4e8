package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/Danjes623/Inventario-SIGI/internal/api/metrics"
	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
	"github.com/Danjes623/Inventario-SIGI/internal/core/ports"
)

// SessionService implements the session lifecycle: one live session per
// user, 24h expiry, passive invalidation on read.
type SessionService struct {
	repo   ports.SessionRepository
	logger zerolog.Logger
}

func NewSessionService(repo ports.SessionRepository, logger zerolog.Logger) *SessionService {
	return &SessionService{repo: repo, logger: logger}
}

// Create registers a session for userID, replacing any existing one. The
// replacement is a single store-side operation, so a concurrent Validate
// never sees two live sessions for the same user.
func (s *SessionService) Create(ctx context.Context, userID, token string) error {
	now := time.Now().UTC()
	session := &domain.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: now.Add(domain.SessionTTL),
		CreatedAt: now,
	}

	if err := s.repo.Replace(ctx, session); err != nil {
		if errors.Is(err, domain.ErrDuplicateToken) {
			// Token collision across users. Not retried: tokens are opaque
			// client-generated values and a collision means a broken client.
			s.logger.Error().Str("user_id", userID).Msg("session token collision")
		}
		return err
	}

	metrics.SessionsCreatedTotal.Inc()
	s.logger.Debug().Str("user_id", userID).Msg("session registered")
	return nil
}

// Validate reports whether a non-expired session matches both fields.
// Expiry is checked at read time: the store garbage-collects expired rows
// lazily, so a row may still physically exist after its expiry elapsed.
func (s *SessionService) Validate(ctx context.Context, userID, token string) (bool, error) {
	session, err := s.repo.Find(ctx, userID, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			metrics.SessionValidationsTotal.WithLabelValues("invalid").Inc()
			return false, nil
		}
		return false, err
	}

	if session.Expired(time.Now().UTC()) {
		metrics.SessionValidationsTotal.WithLabelValues("invalid").Inc()
		return false, nil
	}

	metrics.SessionValidationsTotal.WithLabelValues("valid").Inc()
	return true, nil
}

// End removes the session. Deleting a session that no longer exists is
// not an error.
func (s *SessionService) End(ctx context.Context, userID, token string) error {
	if err := s.repo.Delete(ctx, userID, token); err != nil {
		return err
	}
	metrics.SessionsEndedTotal.WithLabelValues("logout").Inc()
	return nil
}

type beaconPayload struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

// EndBestEffort handles fire-and-forget logout beacons. The payload is
// unvalidated raw text; parse and deletion failures are logged and
// swallowed so the transport layer can always acknowledge.
func (s *SessionService) EndBestEffort(ctx context.Context, rawBody []byte) {
	var payload beaconPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		s.logger.Debug().Err(err).Msg("unparseable logout beacon")
		return
	}
	if payload.UserID == "" || payload.SessionID == "" {
		return
	}

	if err := s.repo.Delete(ctx, payload.UserID, payload.SessionID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", payload.UserID).Msg("beacon logout failed")
		return
	}
	metrics.SessionsEndedTotal.WithLabelValues("beacon").Inc()
}

// PurgeAll removes every session. Run at process start to invalidate
// sessions from a previous run, and exposed as an admin operation.
func (s *SessionService) PurgeAll(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	metrics.SessionsEndedTotal.WithLabelValues("purge").Add(float64(deleted))
	s.logger.Info().Int64("deleted", deleted).Msg("sessions purged")
	return deleted, nil
}
