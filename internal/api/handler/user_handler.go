package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/project-api/internal/api/metrics"
	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
	activity    ports.ActivityRepository
}

func NewUserHandler(userService ports.UserService, activity ports.ActivityRepository) *UserHandler {
	return &UserHandler{userService: userService, activity: activity}
}

type updateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=basic admin"`
}

type addToProjectRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	ProjectID   string `json:"project_id" validate:"required,uuid"`
	AccessLevel int    `json:"access_level" validate:"required"`
}

// List returns all users.
//
// @Summary  List users
// @Tags     users
// @Produce  json
// @Security BearerAuth
// @Success  200  {array}  domain.User
// @Router   /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one user with their project memberships.
//
// @Summary  Get a user
// @Tags     users
// @Produce  json
// @Security BearerAuth
// @Param    id   path      string  true  "User id"
// @Success  200  {object}  domain.User
// @Failure  400  {object}  map[string]string
// @Router   /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.FindByID(c.Request().Context(), domain.UserID(c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update mutates user fields; a new password is re-hashed before persisting.
//
// @Summary  Update a user
// @Tags     users
// @Accept   json
// @Security BearerAuth
// @Param    id    path  string             true  "User id"
// @Param    body  body  updateUserRequest  true  "Fields to update"
// @Success  204
// @Failure  400  {object}  map[string]string
// @Router   /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.userService.Update(c.Request().Context(), domain.UserID(c.Param("id")), ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user.
//
// @Summary  Delete a user
// @Tags     users
// @Security BearerAuth
// @Param    id  path  string  true  "User id"
// @Success  204
// @Failure  400  {object}  map[string]string
// @Router   /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), domain.UserID(c.Param("id"))); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddToProject invites a user into a project at a given access level.
//
// @Summary  Add a user to a project
// @Tags     users
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body  body      addToProjectRequest  true  "Membership details"
// @Success  201   {object}  domain.Membership
// @Failure  400   {object}  map[string]string
// @Router   /users/add-to-project [post]
func (h *UserHandler) AddToProject(c echo.Context) error {
	var req addToProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	membership, err := h.userService.AddToProject(c.Request().Context(), ports.AddToProjectInput{
		UserID:      domain.UserID(req.UserID),
		ProjectID:   domain.ProjectID(req.ProjectID),
		AccessLevel: domain.AccessLevel(req.AccessLevel),
	})
	if err != nil {
		return err
	}

	metrics.MembershipsCreatedTotal.WithLabelValues(membership.AccessLevel.String()).Inc()
	return c.JSON(http.StatusCreated, membership)
}

// Activity returns the most recent activity feed entries for a user.
//
// @Summary  Get a user's activity feed
// @Tags     users
// @Produce  json
// @Security BearerAuth
// @Param    id   path     string  true  "User id"
// @Success  200  {array}  domain.ActivityEvent
// @Router   /users/{id}/activity [get]
func (h *UserHandler) Activity(c echo.Context) error {
	events, err := h.activity.ListBySubject(c.Request().Context(), c.Param("id"), 50)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
