// Package handler provides the HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/tasks/domain"
	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/transport/http/dto"
	"task_backend/internal/feature/tasks/usecase"
	"task_backend/internal/platform/token"
)

// TaskUsecase defines the task operations the handler consumes. Every
// operation is scoped to the authenticated user resolved by the session
// middleware.
type TaskUsecase interface {
	Create(ctx context.Context, userID, title, description string, dueDate time.Time) (*entity.Task, error)
	Get(ctx context.Context, userID, taskID string) (*entity.Task, error)
	List(ctx context.Context, userID string) ([]*entity.Task, error)
	ListRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.Task, error)
	Update(ctx context.Context, userID, taskID string, in usecase.UpdateInput) (*entity.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

// TaskHandler handles HTTP requests for task CRUD.
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler creates a new TaskHandler instance.
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List handles GET /api/tasks. With both `from` and `to` query
// parameters, only tasks due within the inclusive range are returned.
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := token.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "unauthorized"})
		return
	}

	from := c.Query("from")
	to := c.Query("to")

	var (
		tasks []*entity.Task
		err   error
	)
	if from != "" || to != "" {
		start, perr := dto.ParseDate(from)
		if perr != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid date range"})
			return
		}
		end, perr := dto.ParseDate(to)
		if perr != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid date range"})
			return
		}
		tasks, err = h.tasks.ListRange(c.Request.Context(), userID, start, end)
	} else {
		tasks, err = h.tasks.List(c.Request.Context(), userID)
	}
	if err != nil {
		slog.Error("task list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskListResp(tasks))
}

// Get handles GET /api/tasks/:id.
func (h *TaskHandler) Get(c *gin.Context) {
	userID, ok := token.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "unauthorized"})
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.renderError(c, err, userID)
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResp(task))
}

// Create handles POST /api/tasks. The owner is always the session user.
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := token.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "unauthorized"})
		return
	}

	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task create validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request"})
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid due date"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), userID, req.Title, req.Description, dueDate)
	if err != nil {
		h.renderError(c, err, userID)
		return
	}

	slog.Info("task created", "task_id", task.ID, "user_id", userID)
	c.JSON(http.StatusCreated, dto.NewTaskResp(task))
}

// Update handles PUT /api/tasks/:id. Only the provided fields change;
// `completed` is reconciled through the entity's toggle.
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := token.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "unauthorized"})
		return
	}

	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task update validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request"})
		return
	}

	in := usecase.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.DueDate != nil {
		dueDate, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid due date"})
			return
		}
		in.DueDate = &dueDate
	}

	task, err := h.tasks.Update(c.Request.Context(), userID, c.Param("id"), in)
	if err != nil {
		h.renderError(c, err, userID)
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskResp(task))
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := token.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "unauthorized"})
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.renderError(c, err, userID)
		return
	}

	slog.Info("task deleted", "task_id", c.Param("id"), "user_id", userID)
	c.JSON(http.StatusOK, dto.MessageResp{Message: "task deleted"})
}

// renderError maps domain errors to their fixed transport statuses.
func (h *TaskHandler) renderError(c *gin.Context, err error, userID string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResp{Error: "task not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "unauthorized"})
	case errors.Is(err, domain.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "title must not be empty"})
	default:
		slog.Error("task operation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "internal error"})
	}
}
