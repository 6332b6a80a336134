package adapters

import (
	"context"
	"sort"
	"sync"
	"time"

	"task_backend/internal/feature/tasks/domain"
	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// taskMemory is the in-memory implementation of the TaskRepository port.
// It sorts query results by due date so its observable behavior matches
// the relational adapter. Records are copied on the way in and out.
type taskMemory struct {
	mu    sync.RWMutex
	tasks map[string]*entity.Task
}

var _ usecase.TaskRepository = (*taskMemory)(nil)

// NewTaskMemory creates an empty in-memory task store.
func NewTaskMemory() *taskMemory {
	return &taskMemory{tasks: make(map[string]*entity.Task)}
}

func (r *taskMemory) Create(ctx context.Context, t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *t
	r.tasks[cp.ID] = &cp
	return nil
}

func (r *taskMemory) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *taskMemory) FindByUserID(ctx context.Context, userID string) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(t *entity.Task) bool {
		return t.UserID == userID
	}), nil
}

func (r *taskMemory) FindByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(t *entity.Task) bool {
		// Inclusive on both ends.
		return t.UserID == userID && !t.DueDate.Before(start) && !t.DueDate.After(end)
	}), nil
}

func (r *taskMemory) Update(ctx context.Context, t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	cp := *t
	r.tasks[cp.ID] = &cp
	return nil
}

func (r *taskMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *taskMemory) DeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.tasks {
		if t.UserID == userID {
			delete(r.tasks, id)
		}
	}
	return nil
}

// collect copies every matching task and sorts ascending by due date.
// Callers must hold at least the read lock.
func (r *taskMemory) collect(match func(*entity.Task) bool) []*entity.Task {
	result := make([]*entity.Task, 0)
	for _, t := range r.tasks {
		if match(t) {
			cp := *t
			result = append(result, &cp)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DueDate.Before(result[j].DueDate)
	})
	return result
}
