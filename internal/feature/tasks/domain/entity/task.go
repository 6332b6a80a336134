// Package entity defines the domain entities for the tasks feature.
package entity

import (
	"time"

	"github.com/google/uuid"

	authentity "task_backend/internal/feature/auth/domain/entity"
)

// Task is a schedulable unit of work owned by exactly one user.
type Task struct {
	// ID is the unique identifier for the task, generated at creation.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Title is the short label shown in lists. Never empty.
	Title string `gorm:"size:255;not null" json:"title"`

	// Description is free text and may be empty.
	Description string `gorm:"type:text" json:"description"`

	// DueDate is the point in time the task is scheduled for.
	DueDate time.Time `gorm:"index;not null" json:"dueDate"`

	// Completed is flipped through ToggleComplete only.
	Completed bool `gorm:"not null;default:false" json:"completed"`

	// UserID references the owning user and is immutable after creation.
	UserID string `gorm:"size:36;not null;index" json:"userId"`

	// User backs the foreign key so the schema cascades task deletion
	// when the owner's account is removed.
	User authentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the task was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTask creates a task bound to its owner, not yet completed.
func NewTask(title, description string, dueDate time.Time, userID string) *Task {
	now := time.Now()
	return &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Completed:   false,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Update mutates the editable fields and refreshes UpdatedAt. Ownership
// and completion are not touched here.
func (t *Task) Update(title, description string, dueDate time.Time) {
	t.Title = title
	t.Description = description
	t.DueDate = dueDate
	t.UpdatedAt = time.Now()
}

// ToggleComplete flips the completion flag. There is no direct setter;
// callers wanting a specific end state toggle conditionally.
func (t *Task) ToggleComplete() {
	t.Completed = !t.Completed
	t.UpdatedAt = time.Now()
}
