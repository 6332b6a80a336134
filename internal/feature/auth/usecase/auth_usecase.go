// Package usecase implements the business logic of the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"task_backend/internal/feature/auth/domain"
	"task_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the providers (adapters).
type UserRepository interface {
	// Create persists a new user. It returns domain.ErrEmailAlreadyExists
	// when a user with the same email (case-insensitive) already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email, case-insensitively.
	// It returns domain.ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id.
	// It returns domain.ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Update replaces the stored record, refreshing UpdatedAt.
	// It returns domain.ErrUserNotFound when the id is absent.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user record.
	// It returns domain.ErrUserNotFound when the id is absent.
	Delete(ctx context.Context, id string) error
}

// PasswordHasher abstracts one-way credential hashing.
type PasswordHasher interface {
	// Hash derives an opaque digest from a plaintext password.
	Hash(password string) (string, error)
	// Verify reports whether the password matches the digest. A mismatch
	// is (false, nil); an error means the digest is corrupt.
	Verify(digest, password string) (bool, error)
}

// TaskRemover is the slice of the task store the auth feature needs to
// cascade an account deletion.
type TaskRemover interface {
	// DeleteByUserID removes every task owned by the user. Removing zero
	// tasks is not an error.
	DeleteByUserID(ctx context.Context, userID string) error
}

// authUsecase implements registration, login, and account deletion.
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tasks  TaskRemover

	// dummyDigest is verified against when the email is unknown, so a
	// login against a missing account costs the same as a wrong password.
	dummyDigest string
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tasks TaskRemover) (*authUsecase, error) {
	dummy, err := hasher.Hash("timing-equalizer")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy digest: %w", err)
	}
	return &authUsecase{
		users:       users,
		hasher:      hasher,
		tasks:       tasks,
		dummyDigest: dummy,
	}, nil
}

// validatePassword checks that the password meets the minimum policy.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new account with a hashed password and returns the
// stored user. Duplicate detection relies on the store's uniqueness
// constraint rather than a racy read-then-write.
func (u *authUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, hashed)
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates the user and returns the stored record on success.
// Unknown email and wrong password collapse into one undifferentiated
// error, and a dummy verification keeps the timing uniform between the
// two cases.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	digest := u.dummyDigest
	if err == nil {
		digest = user.PasswordHash
	}

	ok, verifyErr := u.hasher.Verify(digest, password)
	if err != nil || verifyErr != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// DeleteAccount removes the user and cascades to every task they own.
// Tasks are removed before the user record.
func (u *authUsecase) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if err := u.tasks.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user tasks: %w", err)
	}
	return u.users.Delete(ctx, userID)
}
