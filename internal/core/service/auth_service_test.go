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

	"github.com/userdir/user-directory-api/internal/core/domain"
	"github.com/userdir/user-directory-api/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository shared by the service
// tests in this package.
type stubUserRepo struct {
	seq   int
	byID  map[string]*domain.User
	order []string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	created := cloneUser(user)
	r.seq++
	created.ID = fmt.Sprintf("%024x", r.seq)
	r.byID[created.ID] = cloneUser(created)
	r.order = append(r.order, created.ID)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, id := range r.order {
		if r.byID[id].Email == email {
			return cloneUser(r.byID[id]), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, skip, limit int) ([]*domain.User, int64, error) {
	users := make([]*domain.User, 0, limit)
	for i := skip; i < len(r.order) && len(users) < limit; i++ {
		users = append(users, cloneUser(r.byID[r.order[i]]))
	}
	return users, int64(len(r.order)), nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id, status string) (string, error) {
	u, ok := r.byID[id]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	previous := u.Status
	u.Status = status
	return previous, nil
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, hasher, tokens, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, token, err := svc.Register(context.Background(), ports.RegisterInput{
		FullName: "Alice Example",
		Email:    "alice@example.com",
		Password: "Password1!",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Role != domain.RoleUser || user.Status != domain.StatusActive {
		t.Fatalf("new accounts must be active regular users, got %s/%s", user.Role, user.Status)
	}
	if user.PasswordHash == "Password1!" {
		t.Fatalf("password must be hashed before persistence")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Password1!")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	// The token must decode to the created user's id and display name.
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["userId"] != user.ID {
		t.Fatalf("expected subject %s, got %v", user.ID, claims["userId"])
	}
	if claims["name"] != "Alice Example" {
		t.Fatalf("expected name claim, got %v", claims["name"])
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@example.com"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	input := ports.RegisterInput{FullName: "Bob", Email: "bob@example.com", Password: "Password1!"}
	if _, _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	input.FullName = "Completely Different"
	input.Password = "0therPassw0rd#"
	if _, _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, _, err := svc.Register(context.Background(), ports.RegisterInput{
		FullName: "Carol Example",
		Email:    "carol@example.com",
		Password: "s3cretPass!",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "carol@example.com", "s3cretPass!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}
}

// Wrong password and unknown email must be externally indistinguishable.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		FullName: "Dave", Email: "dave@example.com", Password: "goodPass1!",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, unknownEmail := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", "pass"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@example.com", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
