package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/userdir/user-directory-api/internal/core/domain"
	"github.com/userdir/user-directory-api/internal/core/ports"
)

// AuthService implements registration and login on top of the repository,
// the password hasher, and the token service.
type AuthService struct {
	repo   ports.UserRepository
	hasher PasswordHasher
	tokens *TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher PasswordHasher, tokens *TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new account. Role and status are forced to their
// defaults regardless of what the caller sent; the plaintext password is
// hashed before anything is persisted.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, "", domain.NewValidationError("please provide name, email, and password")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID, created.FullName)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, token, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both fail with ErrInvalidCredentials so callers cannot probe
// which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.NewValidationError("please provide email and password")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.FullName)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}
