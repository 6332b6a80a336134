// Package di wires concrete adapters into the usecases. Adapter selection
// is a construction-time configuration choice, never a runtime branch.
package di

import (
	"fmt"

	authadapters "task_backend/internal/feature/auth/adapters"
	authusecase "task_backend/internal/feature/auth/usecase"
	taskadapters "task_backend/internal/feature/tasks/adapters"
	taskusecase "task_backend/internal/feature/tasks/usecase"
	"task_backend/internal/platform/config"
	"task_backend/internal/platform/db"
)

// Stores bundles the repository pair behind the two ports. Both stores
// always come from the same backend.
type Stores struct {
	Users authusecase.UserRepository
	Tasks taskusecase.TaskRepository
}

// NewStores builds the repositories selected by configuration: a pair of
// process-lifetime in-memory maps, or the Postgres-backed adapters.
func NewStores(cfg *config.Config) (*Stores, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return &Stores{
			Users: authadapters.NewUserMemory(),
			Tasks: taskadapters.NewTaskMemory(),
		}, nil
	case config.StorePostgres:
		conn, err := db.Open(cfg.DatabaseDSN, cfg.RunMigrations)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users: authadapters.NewUserGorm(conn),
			Tasks: taskadapters.NewTaskGorm(conn),
		}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}
