package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Danjes623/Inventario-SIGI/internal/api/metrics"
	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
	"github.com/Danjes623/Inventario-SIGI/internal/core/ports"
)

// bcryptCost matches the 10 rounds the stored hashes were created with.
const bcryptCost = 10

// AuthService implements registration, login, and profile management.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates an account with default role and preferences. The raw
// password is hashed with a per-call salt and only the hash is persisted.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &domain.UserRecord{
		User: domain.User{
			Name:        input.Name,
			Email:       input.Email,
			Role:        domain.RoleUser,
			Preferences: domain.DefaultPreferences(),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		PasswordHash: string(hash),
	}

	// The unique email index closes the race between the lookup above and
	// this insert; the repository reports it as ErrDuplicateEmail.
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info().Str("email", created.Email).Msg("user registered")
	return created.Public(), nil
}

// Login verifies the email/password pair. Unknown email and mismatched
// password produce the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	record, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(record)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", record.Email).Msg("login successful")
	return token, record.Public(), nil
}

// UpdateProfile applies a partial update. Preferences merge field by field
// rather than replacing the whole set. Changing the password requires the
// current one; on any password error the stored hash is left untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	record, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		record.Name = input.Name
	}
	if input.Email != "" {
		record.Email = input.Email
	}
	if input.Preferences != nil {
		record.Preferences = input.Preferences.ApplyTo(record.Preferences)
	}

	if input.NewPassword != "" {
		if input.CurrentPassword == "" {
			return nil, domain.ErrMissingCurrentPassword
		}
		if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(input.CurrentPassword)) != nil {
			return nil, domain.ErrInvalidCurrentPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcryptCost)
		if err != nil {
			return nil, err
		}
		record.PasswordHash = string(hash)
	}

	record.UpdatedAt = time.Now().UTC()
	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", updated.Email).Msg("profile updated")
	return updated.Public(), nil
}

// GetUser returns the public view of an account.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	record, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return record.Public(), nil
}

func (s *AuthService) generateToken(record *domain.UserRecord) (string, error) {
	claims := jwt.MapClaims{
		"sub":  record.ID,
		"role": record.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
