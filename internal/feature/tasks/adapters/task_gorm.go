// Package adapters provides the repository implementations for the tasks
// feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task_backend/internal/feature/tasks/domain"
	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// taskGorm is the relational implementation of the TaskRepository port.
type taskGorm struct {
	db *gorm.DB
}

// Compile-time check that taskGorm satisfies the port.
var _ usecase.TaskRepository = (*taskGorm)(nil)

// NewTaskGorm creates a taskGorm backed by the given connection.
func NewTaskGorm(db *gorm.DB) *taskGorm {
	return &taskGorm{db: db}
}

// Create inserts the task.
func (r *taskGorm) Create(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Omit("User").Create(t).Error
}

// FindByID looks the task up by id.
func (r *taskGorm) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	var t entity.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByUserID returns the user's tasks ordered by due date ascending.
func (r *taskGorm) FindByUserID(ctx context.Context, userID string) ([]*entity.Task, error) {
	var tasks []*entity.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByUserIDAndDateRange returns the user's tasks due within
// [start, end], inclusive on both ends, ordered by due date ascending.
func (r *taskGorm) FindByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.Task, error) {
	var tasks []*entity.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND due_date BETWEEN ? AND ?", userID, start, end).
		Order("due_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update replaces the editable columns of the stored record. Ownership is
// immutable, so user_id is never written.
func (r *taskGorm) Update(ctx context.Context, t *entity.Task) error {
	res := r.db.WithContext(ctx).Model(&entity.Task{ID: t.ID}).
		Select("title", "description", "due_date", "completed", "updated_at").
		Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete removes the task row. Deleting an absent id fails, so a second
// delete of the same task reports not found.
func (r *taskGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&entity.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// DeleteByUserID removes every task owned by the user.
func (r *taskGorm) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Task{}).Error
}
