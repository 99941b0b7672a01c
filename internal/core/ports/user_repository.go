package ports

import (
	"context"

	"github.com/userdir/user-directory-api/internal/core/domain"
)

// UserRepository defines persistence operations over the user collection.
// Each operation touches at most one document; no multi-document transaction
// is ever required by the services built on top.
type UserRepository interface {
	// Create inserts a new user and returns it with the generated id.
	// Returns domain.ErrDuplicateEmail when the unique email index rejects it.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns a page of users sorted by creation order ascending, plus
	// the total collection count irrespective of paging.
	List(ctx context.Context, skip, limit int) ([]*domain.User, int64, error)
	// UpdateStatus atomically sets the status of the user identified by id
	// and returns the status the document held before the update.
	UpdateStatus(ctx context.Context, id, status string) (previous string, err error)
}
