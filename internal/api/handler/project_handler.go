package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/project-api/internal/api/metrics"
	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type createProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Create makes a new project owned by the calling user.
//
// @Summary  Create a project
// @Tags     projects
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body  body      createProjectRequest  true  "Project details"
// @Success  201   {object}  domain.Membership
// @Failure  400   {object}  map[string]string
// @Router   /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	membership, err := h.projectService.Create(c.Request().Context(), userID, ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.Inc()
	metrics.MembershipsCreatedTotal.WithLabelValues(membership.AccessLevel.String()).Inc()
	return c.JSON(http.StatusCreated, membership)
}

// List returns all projects.
//
// @Summary  List projects
// @Tags     projects
// @Produce  json
// @Security BearerAuth
// @Success  200  {array}  domain.Project
// @Router   /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projectService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get returns one project with its members.
//
// @Summary  Get a project
// @Tags     projects
// @Produce  json
// @Security BearerAuth
// @Param    id   path      string  true  "Project id"
// @Success  200  {object}  domain.Project
// @Failure  400  {object}  map[string]string
// @Router   /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projectService.FindByID(c.Request().Context(), domain.ProjectID(c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Update mutates project fields.
//
// @Summary  Update a project
// @Tags     projects
// @Accept   json
// @Security BearerAuth
// @Param    id    path  string                true  "Project id"
// @Param    body  body  updateProjectRequest  true  "Fields to update"
// @Success  204
// @Failure  400  {object}  map[string]string
// @Router   /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.projectService.Update(c.Request().Context(), domain.ProjectID(c.Param("id")), ports.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a project.
//
// @Summary  Delete a project
// @Tags     projects
// @Security BearerAuth
// @Param    id  path  string  true  "Project id"
// @Success  204
// @Failure  400  {object}  map[string]string
// @Router   /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projectService.Delete(c.Request().Context(), domain.ProjectID(c.Param("id"))); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
