// Package adapters provides the repository implementations for the auth
// feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task_backend/internal/feature/auth/domain"
	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/auth/usecase"
)

// userGorm is the relational implementation of the UserRepository port.
// The email uniqueness constraint is enforced by the storage layer's
// unique index on the normalized email column, not just in application
// code.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm satisfies the port.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a userGorm backed by the given connection. The
// connection must be opened with TranslateError enabled.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. A duplicate normalized email surfaces as
// domain.ErrEmailAlreadyExists.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail looks the user up by normalized email.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email_key = ?", entity.NormalizeEmail(email)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID looks the user up by id.
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update replaces the stored record, refreshing UpdatedAt.
func (r *userGorm) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&entity.User{ID: u.ID}).
		Select("email", "email_key", "password_hash", "updated_at").
		Updates(u)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailAlreadyExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the user row. The schema's ON DELETE CASCADE removes
// owned tasks at the storage layer as well.
func (r *userGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&entity.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
