package handler

import (
	"time"

	"github.com/userdir/user-directory-api/internal/core/domain"
)

// errorResponse documents the error envelope in the Swagger output; the
// actual rendering happens in the central error handler.
type errorResponse struct {
	Msg string `json:"msg"`
}

// userResponse is the transport view of a user. It is built field by field
// from the domain entity, so the password hash cannot leak by accident.
type userResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type getUserResponse struct {
	User userResponse `json:"user"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
	Total int64          `json:"total"`
}

type changeStatusResponse struct {
	IsStatusUpdated bool `json:"isStatusUpdated"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toListUsersResponse(users []*domain.User, total int64) listUsersResponse {
	items := make([]userResponse, len(users))
	for i, u := range users {
		items[i] = toUserResponse(u)
	}
	return listUsersResponse{Users: items, Total: total}
}
