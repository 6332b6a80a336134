// Package usecase implements the business logic of the tasks feature,
// including the ownership guard applied to every operation.
package usecase

import (
	"context"
	"strings"
	"time"

	"task_backend/internal/feature/tasks/domain"
	"task_backend/internal/feature/tasks/domain/entity"
)

// TaskRepository abstracts the persistence layer for task entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the providers (adapters).
type TaskRepository interface {
	// Create persists a new task.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by id.
	// It returns domain.ErrTaskNotFound when no task matches.
	FindByID(ctx context.Context, id string) (*entity.Task, error)

	// FindByUserID retrieves the user's tasks in ascending due-date
	// order. Both adapters honor the same ordering contract.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Task, error)

	// FindByUserIDAndDateRange retrieves the user's tasks with
	// start <= dueDate <= end, inclusive on both ends, in ascending
	// due-date order.
	FindByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.Task, error)

	// Update replaces the stored record.
	// It returns domain.ErrTaskNotFound when the id is absent.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the task. A second delete of the same id returns
	// domain.ErrTaskNotFound.
	Delete(ctx context.Context, id string) error

	// DeleteByUserID removes every task owned by the user. Removing zero
	// tasks is not an error.
	DeleteByUserID(ctx context.Context, userID string) error
}

// UpdateInput carries the optional fields of a task update. Nil fields
// are left unchanged; Completed is reconciled through a conditional
// toggle, never set directly.
type UpdateInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
}

// taskUsecase implements task CRUD scoped to the authenticated owner.
type taskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase creates a new taskUsecase instance.
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks}
}

// Create validates and persists a new task owned by userID.
func (u *taskUsecase) Create(ctx context.Context, userID, title, description string, dueDate time.Time) (*entity.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrTitleRequired
	}

	task := entity.NewTask(title, description, dueDate, userID)
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get returns a single task after the ownership check.
func (u *taskUsecase) Get(ctx context.Context, userID, taskID string) (*entity.Task, error) {
	return u.loadOwned(ctx, userID, taskID)
}

// List returns the user's tasks in ascending due-date order.
func (u *taskUsecase) List(ctx context.Context, userID string) ([]*entity.Task, error) {
	return u.tasks.FindByUserID(ctx, userID)
}

// ListRange returns the user's tasks due within [start, end], inclusive
// on both ends.
func (u *taskUsecase) ListRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.Task, error) {
	return u.tasks.FindByUserIDAndDateRange(ctx, userID, start, end)
}

// Update applies the provided fields to the task after the ownership
// check. The guard runs before any mutation; a failed check leaves the
// task untouched.
func (u *taskUsecase) Update(ctx context.Context, userID, taskID string, in UpdateInput) (*entity.Task, error) {
	task, err := u.loadOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	title := task.Title
	if in.Title != nil {
		title = *in.Title
	}
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrTitleRequired
	}
	description := task.Description
	if in.Description != nil {
		description = *in.Description
	}
	dueDate := task.DueDate
	if in.DueDate != nil {
		dueDate = *in.DueDate
	}

	task.Update(title, description, dueDate)
	if in.Completed != nil && *in.Completed != task.Completed {
		task.ToggleComplete()
	}

	if err := u.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Toggle flips the task's completion flag after the ownership check.
func (u *taskUsecase) Toggle(ctx context.Context, userID, taskID string) (*entity.Task, error) {
	task, err := u.loadOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.ToggleComplete()
	if err := u.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task after the ownership check.
func (u *taskUsecase) Delete(ctx context.Context, userID, taskID string) error {
	if _, err := u.loadOwned(ctx, userID, taskID); err != nil {
		return err
	}
	return u.tasks.Delete(ctx, taskID)
}

// loadOwned loads the task and enforces the ownership guard: a task
// belonging to someone else fails with ErrUnauthorized, not
// ErrTaskNotFound.
func (u *taskUsecase) loadOwned(ctx context.Context, userID, taskID string) (*entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return task, nil
}
