package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task_backend/internal/feature/tasks/domain"
	"task_backend/internal/feature/tasks/domain/entity"
)

// mockTaskRepository is a func-field mock of the TaskRepository interface.
type mockTaskRepository struct {
	CreateFunc                   func(ctx context.Context, task *entity.Task) error
	FindByIDFunc                 func(ctx context.Context, id string) (*entity.Task, error)
	FindByUserIDFunc             func(ctx context.Context, userID string) ([]*entity.Task, error)
	FindByUserIDAndDateRangeFunc func(ctx context.Context, userID string, start, end time.Time) ([]*entity.Task, error)
	UpdateFunc                   func(ctx context.Context, task *entity.Task) error
	DeleteFunc                   func(ctx context.Context, id string) error
	DeleteByUserIDFunc           func(ctx context.Context, userID string) error
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrTaskNotFound
}

func (m *mockTaskRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Task, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTaskRepository) FindByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.Task, error) {
	if m.FindByUserIDAndDateRangeFunc != nil {
		return m.FindByUserIDAndDateRangeFunc(ctx, userID, start, end)
	}
	return nil, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTaskRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

// repoWithTask returns a mock whose FindByID serves a copy of the given
// task, so guard failures can be checked for absence of mutation.
func repoWithTask(task *entity.Task) *mockTaskRepository {
	return &mockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.Task, error) {
			if id == task.ID {
				cp := *task
				return &cp, nil
			}
			return nil, domain.ErrTaskNotFound
		},
	}
}

func strPtr(s string) *string        { return &s }
func boolPtr(b bool) *bool           { return &b }
func timePtr(t time.Time) *time.Time { return &t }

func TestTaskUsecase_Create(t *testing.T) {
	t.Run("persists an owned task", func(t *testing.T) {
		var stored *entity.Task
		repo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				stored = task
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		task, err := uc.Create(context.Background(), "user-1", "Pay rent", "", due)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if task.ID == "" {
			t.Error("expected a generated id")
		}
		if stored.UserID != "user-1" {
			t.Errorf("expected owner user-1, got %q", stored.UserID)
		}
		if stored.Completed {
			t.Error("expected new task to start incomplete")
		}
	})

	t.Run("blank title rejected", func(t *testing.T) {
		created := false
		repo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				created = true
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		_, err := uc.Create(context.Background(), "user-1", "   ", "", time.Now())
		if !errors.Is(err, domain.ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
		if created {
			t.Error("expected no task to be persisted")
		}
	})
}

func TestTaskUsecase_OwnershipGuard(t *testing.T) {
	task := entity.NewTask("Pay rent", "", time.Now(), "alice")

	t.Run("read by another user", func(t *testing.T) {
		uc := NewTaskUsecase(repoWithTask(task))

		_, err := uc.Get(context.Background(), "bob", task.ID)
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("update by another user never mutates", func(t *testing.T) {
		repo := repoWithTask(task)
		updated := false
		repo.UpdateFunc = func(ctx context.Context, task *entity.Task) error {
			updated = true
			return nil
		}
		uc := NewTaskUsecase(repo)

		_, err := uc.Update(context.Background(), "bob", task.ID, UpdateInput{Title: strPtr("hijacked")})
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
		if updated {
			t.Error("guard must run before any mutation")
		}
	})

	t.Run("delete by another user", func(t *testing.T) {
		repo := repoWithTask(task)
		deleted := false
		repo.DeleteFunc = func(ctx context.Context, id string) error {
			deleted = true
			return nil
		}
		uc := NewTaskUsecase(repo)

		err := uc.Delete(context.Background(), "bob", task.ID)
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
		if deleted {
			t.Error("guard must run before deletion")
		}
	})

	t.Run("owner passes the guard", func(t *testing.T) {
		uc := NewTaskUsecase(repoWithTask(task))

		got, err := uc.Get(context.Background(), "alice", task.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != task.ID {
			t.Errorf("expected task %q, got %q", task.ID, got.ID)
		}
	})

	t.Run("absent task is not found", func(t *testing.T) {
		uc := NewTaskUsecase(repoWithTask(task))

		_, err := uc.Get(context.Background(), "alice", "no-such-task")
		if !errors.Is(err, domain.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestTaskUsecase_Update(t *testing.T) {
	t.Run("partial update keeps unset fields", func(t *testing.T) {
		due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		task := entity.NewTask("Pay rent", "before noon", due, "alice")
		repo := repoWithTask(task)

		var stored *entity.Task
		repo.UpdateFunc = func(ctx context.Context, t *entity.Task) error {
			stored = t
			return nil
		}
		uc := NewTaskUsecase(repo)

		got, err := uc.Update(context.Background(), "alice", task.ID, UpdateInput{
			Title: strPtr("Pay rent and utilities"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.Title != "Pay rent and utilities" {
			t.Errorf("unexpected title %q", got.Title)
		}
		if got.Description != "before noon" {
			t.Errorf("expected description preserved, got %q", got.Description)
		}
		if !got.DueDate.Equal(due) {
			t.Errorf("expected due date preserved, got %v", got.DueDate)
		}
		if stored == nil {
			t.Fatal("expected repository update")
		}
	})

	t.Run("completed reconciled via conditional toggle", func(t *testing.T) {
		task := entity.NewTask("Pay rent", "", time.Now(), "alice")
		repo := repoWithTask(task)
		uc := NewTaskUsecase(repo)

		got, err := uc.Update(context.Background(), "alice", task.ID, UpdateInput{Completed: boolPtr(true)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Completed {
			t.Error("expected task to be completed")
		}

		// Requesting the current state toggles nothing.
		got, err = uc.Update(context.Background(), "alice", task.ID, UpdateInput{Completed: boolPtr(false)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Completed {
			t.Error("expected task to be incomplete")
		}
	})

	t.Run("blank title rejected", func(t *testing.T) {
		task := entity.NewTask("Pay rent", "", time.Now(), "alice")
		uc := NewTaskUsecase(repoWithTask(task))

		_, err := uc.Update(context.Background(), "alice", task.ID, UpdateInput{Title: strPtr("  ")})
		if !errors.Is(err, domain.ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
	})

	t.Run("due date change", func(t *testing.T) {
		task := entity.NewTask("Pay rent", "", time.Now(), "alice")
		uc := NewTaskUsecase(repoWithTask(task))

		newDue := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		got, err := uc.Update(context.Background(), "alice", task.ID, UpdateInput{DueDate: timePtr(newDue)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.DueDate.Equal(newDue) {
			t.Errorf("expected due date %v, got %v", newDue, got.DueDate)
		}
	})
}

func TestTaskUsecase_Toggle(t *testing.T) {
	task := entity.NewTask("Pay rent", "", time.Now(), "alice")
	uc := NewTaskUsecase(repoWithTask(task))

	got, err := uc.Toggle(context.Background(), "alice", task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Completed {
		t.Error("expected task to be completed after toggle")
	}

	_, err = uc.Toggle(context.Background(), "bob", task.ID)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for foreign toggle, got %v", err)
	}
}

func TestTaskUsecase_Delete(t *testing.T) {
	task := entity.NewTask("Pay rent", "", time.Now(), "alice")

	t.Run("owner deletes", func(t *testing.T) {
		repo := repoWithTask(task)
		var deleted string
		repo.DeleteFunc = func(ctx context.Context, id string) error {
			deleted = id
			return nil
		}
		uc := NewTaskUsecase(repo)

		if err := uc.Delete(context.Background(), "alice", task.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != task.ID {
			t.Errorf("expected task %q deleted, got %q", task.ID, deleted)
		}
	})

	t.Run("absent task", func(t *testing.T) {
		uc := NewTaskUsecase(repoWithTask(task))

		err := uc.Delete(context.Background(), "alice", "no-such-task")
		if !errors.Is(err, domain.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}
