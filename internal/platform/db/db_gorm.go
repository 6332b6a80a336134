// Package db opens the relational store backing the durable repository
// adapters.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "task_backend/internal/feature/auth/domain/entity"
	taskentity "task_backend/internal/feature/tasks/domain/entity"
)

// Open connects to Postgres, retrying until the database accepts
// connections or the deadline passes. TranslateError is enabled so the
// adapters can match gorm.ErrDuplicatedKey regardless of driver.
func Open(dsn string, runMigrations bool) (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after 60s: %w", err)
		}
		log.Printf("database connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		if err := conn.AutoMigrate(
			&authentity.User{},
			&taskentity.Task{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	return conn, nil
}
