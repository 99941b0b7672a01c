package ports

import (
	"context"

	"github.com/userdir/user-directory-api/internal/core/domain"
)

// UserService implements the role-gated directory operations. The actor is
// the authenticated user attached by the auth middleware; every method runs
// the domain policy check before touching the repository.
type UserService interface {
	ListUsers(ctx context.Context, actor *domain.User, skip, limit int) ([]*domain.User, int64, error)
	GetUser(ctx context.Context, actor *domain.User, targetID string) (*domain.User, error)
	// ChangeStatus sets the target's status and reports whether the stored
	// value actually changed. Setting the same status twice is not an error.
	ChangeStatus(ctx context.Context, actor *domain.User, targetID, newStatus string) (bool, error)
}

// TokenVerifier resolves a signed bearer token back to its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// TokenClaims is the identity a verified token asserts.
type TokenClaims struct {
	UserID string
	Name   string
}
