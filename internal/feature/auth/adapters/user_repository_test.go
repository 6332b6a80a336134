package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task_backend/internal/feature/auth/domain"
	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestUserGorm(t *testing.T) {
	runUserRepositoryTests(t, func(t *testing.T) usecase.UserRepository {
		return NewUserGorm(setupTestDB(t))
	})
}

func TestUserMemory(t *testing.T) {
	runUserRepositoryTests(t, func(t *testing.T) usecase.UserRepository {
		return NewUserMemory()
	})
}

// runUserRepositoryTests exercises the UserRepository port contract. Both
// adapters must pass the same suite with identical observable behavior.
func runUserRepositoryTests(t *testing.T, newRepo func(t *testing.T) usecase.UserRepository) {
	ctx := context.Background()

	t.Run("create and find by id", func(t *testing.T) {
		repo := newRepo(t)

		u := entity.NewUser("Alice@x.com", "digest")
		require.NoError(t, repo.Create(ctx, u))

		got, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "Alice@x.com", got.Email)
		assert.Equal(t, "digest", got.PasswordHash)
	})

	t.Run("find by email is case-insensitive", func(t *testing.T) {
		repo := newRepo(t)

		u := entity.NewUser("Alice@x.com", "digest")
		require.NoError(t, repo.Create(ctx, u))

		got, err := repo.FindByEmail(ctx, "ALICE@X.COM")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		// Original casing preserved for display.
		assert.Equal(t, "Alice@x.com", got.Email)
	})

	t.Run("absent lookups return not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.FindByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = repo.FindByID(ctx, "no-such-id")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("duplicate email rejected regardless of case", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.Create(ctx, entity.NewUser("alice@x.com", "digest")))

		err := repo.Create(ctx, entity.NewUser("ALICE@x.com", "other-digest"))
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("update replaces the record", func(t *testing.T) {
		repo := newRepo(t)

		u := entity.NewUser("alice@x.com", "digest")
		require.NoError(t, repo.Create(ctx, u))

		before := u.UpdatedAt
		u.PasswordHash = "new-digest"
		require.NoError(t, repo.Update(ctx, u))

		got, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "new-digest", got.PasswordHash)
		assert.False(t, got.UpdatedAt.Before(before), "expected UpdatedAt to be refreshed")
	})

	t.Run("update of absent user fails", func(t *testing.T) {
		repo := newRepo(t)

		u := entity.NewUser("alice@x.com", "digest")
		err := repo.Update(ctx, u)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		repo := newRepo(t)

		u := entity.NewUser("alice@x.com", "digest")
		require.NoError(t, repo.Create(ctx, u))
		require.NoError(t, repo.Delete(ctx, u.ID))

		_, err := repo.FindByID(ctx, u.ID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		// The email becomes available again.
		assert.NoError(t, repo.Create(ctx, entity.NewUser("alice@x.com", "digest")))
	})

	t.Run("delete of absent user fails", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.Delete(ctx, "no-such-id")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("returned records are isolated from the store", func(t *testing.T) {
		repo := newRepo(t)

		u := entity.NewUser("alice@x.com", "digest")
		require.NoError(t, repo.Create(ctx, u))

		got, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		got.PasswordHash = "mutated"

		again, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "digest", again.PasswordHash)
	})
}
