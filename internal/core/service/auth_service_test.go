package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
	"github.com/Danjes623/Inventario-SIGI/internal/core/ports"
)

type stubUserRepo struct {
	byID map[string]*domain.UserRecord
	seq  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.UserRecord)}
}

func cloneRecord(r *domain.UserRecord) *domain.UserRecord {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, record *domain.UserRecord) (*domain.UserRecord, error) {
	for _, u := range r.byID {
		if u.Email == record.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.seq++
	copy := cloneRecord(record)
	copy.ID = fmt.Sprintf("user-%d", r.seq)
	r.byID[copy.ID] = cloneRecord(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.UserRecord, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return cloneRecord(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.UserRecord, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneRecord(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, record *domain.UserRecord) (*domain.UserRecord, error) {
	if _, ok := r.byID[record.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.byID[record.ID] = cloneRecord(record)
	return cloneRecord(record), nil
}

func newAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role, got %s", user.Role)
	}
	if user.Preferences != domain.DefaultPreferences() {
		t.Fatalf("expected default preferences, got %+v", user.Preferences)
	}

	stored := repo.byID[user.ID]
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pass"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Bob 2", Email: "bob@example.com", Password: "other"}); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Carol", Email: "carol@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != user.ID {
		t.Fatalf("expected sub %s, got %v", user.ID, claims["sub"])
	}
	if claims["role"] != domain.RoleUser {
		t.Fatalf("expected role %s, got %v", domain.RoleUser, claims["role"])
	}
}

// Unknown email and wrong password must be indistinguishable to callers.
func TestAuthService_Login_GenericFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "Dave", Email: "dave@example.com", Password: "goodpass"})

	_, _, errWrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, errUnknown := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPass)
	}
	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", errUnknown)
	}
}

func TestAuthService_Login_MutatedPasswordFails(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "Eve", Email: "eve@example.com", Password: "hunter2"})

	for _, p := range []string{"hunter2 ", "Hunter2", "hunter", "hunter22", ""} {
		if _, _, err := svc.Login(context.Background(), "eve@example.com", p); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected login with %q to fail, got %v", p, err)
		}
	}
}

func TestAuthService_UpdateProfile_NotFound(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.UpdateProfile(context.Background(), "missing", ports.UpdateProfileInput{Name: "X"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_UpdateProfile_PreferencesMerge(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Name: "Frank", Email: "frank@example.com", Password: "pass"})

	on := true
	updated, err := svc.UpdateProfile(context.Background(), created.ID, ports.UpdateProfileInput{
		Preferences: &domain.PreferencesPatch{EmailNotifications: &on},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Preferences.EmailNotifications {
		t.Fatalf("expected emailNotifications on")
	}
	// the rest of the defaults survive the merge
	if !updated.Preferences.LowStockNotifications || updated.Preferences.Language != "es" {
		t.Fatalf("merge clobbered unrelated preferences: %+v", updated.Preferences)
	}
}

func TestAuthService_UpdateProfile_MissingCurrentPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Name: "Gina", Email: "gina@example.com", Password: "original"})
	before := repo.byID[created.ID].PasswordHash

	_, err := svc.UpdateProfile(context.Background(), created.ID, ports.UpdateProfileInput{NewPassword: "changed"})
	if !errors.Is(err, domain.ErrMissingCurrentPassword) {
		t.Fatalf("expected ErrMissingCurrentPassword, got %v", err)
	}
	if repo.byID[created.ID].PasswordHash != before {
		t.Fatalf("stored hash must be unchanged on failure")
	}
}

func TestAuthService_UpdateProfile_WrongCurrentPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Name: "Hank", Email: "hank@example.com", Password: "original"})
	before := repo.byID[created.ID].PasswordHash

	_, err := svc.UpdateProfile(context.Background(), created.ID, ports.UpdateProfileInput{
		CurrentPassword: "wrong",
		NewPassword:     "changed",
	})
	if !errors.Is(err, domain.ErrInvalidCurrentPassword) {
		t.Fatalf("expected ErrInvalidCurrentPassword, got %v", err)
	}
	if repo.byID[created.ID].PasswordHash != before {
		t.Fatalf("stored hash must be unchanged on failure")
	}
}

func TestAuthService_UpdateProfile_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Name: "Iris", Email: "iris@example.com", Password: "original"})

	if _, err := svc.UpdateProfile(context.Background(), created.ID, ports.UpdateProfileInput{
		CurrentPassword: "original",
		NewPassword:     "changed",
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "iris@example.com", "changed"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "iris@example.com", "original"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password must no longer work, got %v", err)
	}
}

func TestAuthService_GetUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Name: "Jon", Email: "jon@example.com", Password: "pass"})

	user, err := svc.GetUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if user.Email != "jon@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
