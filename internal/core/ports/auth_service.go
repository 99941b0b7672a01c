package ports

import (
	"context"

	"github.com/userdir/user-directory-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role and status
// are not part of it: new accounts are always active regular users.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// AuthService implements the registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
