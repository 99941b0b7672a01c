package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/userdir/user-directory-api/internal/api/metrics"
	"github.com/userdir/user-directory-api/internal/core/domain"
	"github.com/userdir/user-directory-api/internal/core/ports"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// UserHandler handles the role-gated directory routes.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns one page of users plus the total count. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Documents to skip"      default(0)
// @Param        limit  query     int  false  "Page size (at least 1)" default(10)
// @Success      200    {object}  listUsersResponse
// @Failure      400    {object}  errorResponse  "not admin or bad paging params"
// @Failure      401    {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	skip, err := queryInt(c, "skip", defaultSkip)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil {
		return err
	}

	users, total, err := h.userService.ListUsers(c.Request().Context(), actor, skip, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListUsersResponse(users, total))
}

// Get returns a single user. Self-or-admin, and the actor must be active.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id (24 hex chars)"
// @Success      200  {object}  getUserResponse
// @Failure      400  {object}  errorResponse  "malformed id or access denied"
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	targetID := c.Param("id")
	if !domain.ValidID(targetID) {
		return domain.NewValidationError("invalid id parameter")
	}

	user, err := h.userService.GetUser(c.Request().Context(), actor, targetID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, getUserResponse{User: toUserResponse(user)})
}

// ChangeStatus blocks or unblocks a user. Self-or-admin. Re-applying the
// current status reports isStatusUpdated=false instead of failing.
//
// @Summary      Block or unblock a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true  "User id (24 hex chars)"
// @Param        newStatus  path      string  true  "New status"  Enums(active, inactive)
// @Success      200        {object}  changeStatusResponse
// @Failure      400        {object}  errorResponse  "malformed id, bad status, or access denied"
// @Failure      401        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /users/{id}/{newStatus} [post]
func (h *UserHandler) ChangeStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	targetID := c.Param("id")
	if !domain.ValidID(targetID) {
		return domain.NewValidationError("invalid id parameter")
	}
	newStatus := c.Param("newStatus")

	changed, err := h.userService.ChangeStatus(c.Request().Context(), actor, targetID, newStatus)
	if err != nil {
		return err
	}

	metrics.StatusChangesTotal.WithLabelValues(newStatus, strconv.FormatBool(changed)).Inc()
	return c.JSON(http.StatusOK, changeStatusResponse{IsStatusUpdated: changed})
}

// queryInt parses an optional non-negative integer query parameter. Range
// checks beyond integer parsing belong to the service layer.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("incorrect skip or limit params")
	}
	return v, nil
}
