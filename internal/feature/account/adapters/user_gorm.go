// Package adapters provides the repository implementations for the account feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"registration_backend/internal/feature/account/domain/entity"
	"registration_backend/internal/feature/account/usecase"
)

// userGorm is the GORM implementation of the UserRepository interface.
// It operates on the handle it was constructed over, which may be a transaction.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm over the given gorm.DB handle.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// uniqueViolationCode is PostgreSQL's unique_violation error code.
const uniqueViolationCode = "23505"

// Create inserts the user. A uniqueness violation on email is translated into
// usecase.ErrUserAlreadyExists so the service layer never sees a driver error
// for the known duplicate-email race.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			(errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode) {
			return usecase.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// It returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// It returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Activate sets is_active = true for the user. The update is idempotent: a
// second call matches the row again and writes the same value. Business rules
// (is the user already active?) are the caller's responsibility.
func (r *userGorm) Activate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("is_active", true).Error
}
