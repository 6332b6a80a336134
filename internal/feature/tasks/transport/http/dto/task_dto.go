// Package dto defines data transfer objects for the tasks feature's HTTP
// transport layer.
package dto

import (
	"fmt"
	"time"

	"task_backend/internal/feature/tasks/domain/entity"
)

// dateOnly is the fallback layout for clients sending calendar dates
// without a time component.
const dateOnly = "2006-01-02"

// ParseDate accepts an RFC 3339 timestamp or a bare calendar date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected RFC 3339 or YYYY-MM-DD", s)
}

// CreateTaskReq is the request body for POST /api/tasks.
type CreateTaskReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" binding:"required"`
}

// UpdateTaskReq is the request body for PUT /api/tasks/:id. Absent fields
// leave the task unchanged.
type UpdateTaskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Completed   *bool   `json:"completed"`
}

// TaskResp is the wire representation of a task. Dates serialize as
// RFC 3339.
type TaskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTaskResp converts a task entity into its wire representation.
func NewTaskResp(t *entity.Task) TaskResp {
	return TaskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTaskListResp converts a slice of task entities.
func NewTaskListResp(tasks []*entity.Task) []TaskResp {
	out := make([]TaskResp, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResp(t))
	}
	return out
}

// ErrorResp is the uniform error body for the tasks endpoints.
type ErrorResp struct {
	Error string `json:"error"`
}

// MessageResp is a generic success message body.
type MessageResp struct {
	Message string `json:"message"`
}
