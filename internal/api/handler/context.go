package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userdir/user-directory-api/internal/core/domain"
)

// ActorKey is the context key under which the auth middleware stores the
// authenticated user.
const ActorKey = "actor"

// ctxActor extracts the authenticated user injected by the auth middleware.
// Its presence proves the middleware ran; a protected route reached without
// it is a wiring bug surfaced as 401, never as a nil dereference downstream.
func ctxActor(c echo.Context) (*domain.User, error) {
	actor, _ := c.Get(ActorKey).(*domain.User)
	if actor == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return actor, nil
}
