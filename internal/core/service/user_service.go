package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/userdir/user-directory-api/internal/core/domain"
	"github.com/userdir/user-directory-api/internal/core/ports"
)

// UserService implements the role-gated directory operations. Policy
// decisions are delegated to the pure predicates in the domain package.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// ListUsers returns one page of the directory plus the total count. Admin
// only. Skip must be >= 0 and limit >= 1.
func (s *UserService) ListUsers(ctx context.Context, actor *domain.User, skip, limit int) ([]*domain.User, int64, error) {
	if !domain.CanListAllUsers(actor) {
		return nil, 0, domain.ErrAccessDenied
	}
	if skip < 0 || limit < 1 {
		return nil, 0, domain.NewValidationError("incorrect skip or limit params")
	}
	return s.repo.List(ctx, skip, limit)
}

// GetUser returns the record identified by targetID if the actor may view it.
func (s *UserService) GetUser(ctx context.Context, actor *domain.User, targetID string) (*domain.User, error) {
	if !domain.CanViewUser(actor, targetID) {
		if actor != nil && actor.Status == domain.StatusInactive {
			return nil, domain.ErrInactiveAccount
		}
		return nil, domain.ErrAccessDenied
	}
	return s.repo.FindByID(ctx, targetID)
}

// ChangeStatus sets the target's status and reports whether the stored value
// actually changed. Idempotent: re-applying the current status yields false.
func (s *UserService) ChangeStatus(ctx context.Context, actor *domain.User, targetID, newStatus string) (bool, error) {
	if !domain.CanChangeStatus(actor, targetID) {
		return false, domain.ErrAccessDenied
	}
	if !domain.ValidStatus(newStatus) {
		return false, domain.NewValidationError("status must be one of: active, inactive")
	}

	previous, err := s.repo.UpdateStatus(ctx, targetID, newStatus)
	if err != nil {
		return false, err
	}

	changed := previous != newStatus
	if changed {
		s.logger.Info().
			Str("user_id", targetID).
			Str("actor_id", actor.ID).
			Str("status", newStatus).
			Msg("user status changed")
	}
	return changed, nil
}
