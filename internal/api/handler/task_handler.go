package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type createTaskRequest struct {
	Name            string `json:"name" validate:"required,min=1"`
	Description     string `json:"description"`
	Status          string `json:"status" validate:"omitempty,oneof=created in_progress finished"`
	ResponsibleName string `json:"responsible_name"`
}

// Create adds a task to a project.
//
// @Summary  Create a task in a project
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id    path      string             true  "Project id"
// @Param    body  body      createTaskRequest  true  "Task details"
// @Success  201   {object}  domain.Task
// @Failure  400   {object}  map[string]string
// @Router   /projects/{id}/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.Create(c.Request().Context(), domain.ProjectID(c.Param("id")), ports.CreateTaskInput{
		Name:            req.Name,
		Description:     req.Description,
		Status:          domain.TaskStatus(req.Status),
		ResponsibleName: req.ResponsibleName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// List returns the tasks of a project.
//
// @Summary  List tasks in a project
// @Tags     tasks
// @Produce  json
// @Security BearerAuth
// @Param    id   path     string  true  "Project id"
// @Success  200  {array}  domain.Task
// @Failure  400  {object}  map[string]string
// @Router   /projects/{id}/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.taskService.ListByProject(c.Request().Context(), domain.ProjectID(c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}
