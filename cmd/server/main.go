package main

import (
	"log"
	"log/slog"
	"os"

	"task_backend/internal/app/di"
	"task_backend/internal/app/router"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	authusecase "task_backend/internal/feature/auth/usecase"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	taskusecase "task_backend/internal/feature/tasks/usecase"
	"task_backend/internal/platform/config"
	"task_backend/internal/platform/hash"
	"task_backend/internal/platform/token"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Repositories, selected by configuration.
	stores, err := di.NewStores(cfg)
	if err != nil {
		log.Fatalf("failed to build stores: %v", err)
	}

	// Platform services.
	hasher := hash.NewArgon2()
	sessions := token.NewManager(cfg.JWTSecret, cfg.SessionTTL)

	// Usecases.
	authUC, err := authusecase.NewAuthUsecase(stores.Users, hasher, stores.Tasks)
	if err != nil {
		log.Fatalf("failed to build auth usecase: %v", err)
	}
	taskUC := taskusecase.NewTaskUsecase(stores.Tasks)

	// Handlers.
	authH := authhandler.NewAuthHandler(authUC, sessions)
	taskH := taskhandler.NewTaskHandler(taskUC)

	r := router.NewRouter(authH, taskH, sessions)

	slog.Info("server starting", "port", cfg.Port, "store", cfg.Store)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
