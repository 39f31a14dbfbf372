package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamilaomar/moodtracker/backend/internal/apierror"
	"github.com/kamilaomar/moodtracker/backend/internal/models"
	"github.com/kamilaomar/moodtracker/backend/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask handles POST /api/v1/users/:user_id/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		if fields, ok := fieldErrors(err); ok {
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, fields))
			return
		}
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), c.Param("user_id"), &req)
	if err != nil {
		writeServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /api/v1/users/:user_id/tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeServiceError(c, err, "")
		return
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /api/v1/users/:user_id/tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), c.Param("user_id"), taskID)
	if err != nil {
		writeServiceError(c, err, taskID)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PATCH /api/v1/users/:user_id/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	// NullableString fields carry no binding tags; times are checked by the service.
	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), c.Param("user_id"), taskID, &req)
	if err != nil {
		writeServiceError(c, err, taskID)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/v1/users/:user_id/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), c.Param("user_id"), taskID); err != nil {
		writeServiceError(c, err, taskID)
		return
	}

	c.Status(http.StatusNoContent)
}

func taskIDParam(c *gin.Context) (string, bool) {
	taskID := c.Param("id")
	if err := service.ValidateTaskID(taskID); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(apierror.GetRequestID(c), "id", taskID))
		return "", false
	}
	return taskID, true
}
