package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"registration_backend/internal/feature/account/domain/entity"
	"registration_backend/internal/feature/account/usecase"
)

// activationCodeGorm is the GORM implementation of the ActivationCodeRepository
// interface. It operates on the handle it was constructed over, which may be a
// transaction; GetForUpdate only makes sense inside one.
type activationCodeGorm struct {
	db *gorm.DB
}

// Compile-time check that activationCodeGorm implements ActivationCodeRepository.
var _ usecase.ActivationCodeRepository = (*activationCodeGorm)(nil)

// NewActivationCodeGorm creates a new activationCodeGorm over the given gorm.DB handle.
func NewActivationCodeGorm(db *gorm.DB) *activationCodeGorm {
	return &activationCodeGorm{db: db}
}

// CreateOrReplace upserts the single code row for the user. A prior code is
// overwritten, not appended to, and used is reset to false.
func (r *activationCodeGorm) CreateOrReplace(ctx context.Context, userID uint, hashedCode string, expiresAt time.Time) error {
	code := entity.ActivationCode{
		UserID:     userID,
		HashedCode: hashedCode,
		ExpiresAt:  expiresAt,
		Used:       false,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"hashed_code", "expires_at", "used"}),
		}).
		Create(&code).Error
}

// GetForUpdate reads the user's code row with an exclusive row lock held until
// the enclosing transaction ends, so two concurrent activation attempts for the
// same user serialize instead of both observing used = false.
// It returns usecase.ErrActivationCodeNotFound when no row exists.
func (r *activationCodeGorm) GetForUpdate(ctx context.Context, userID uint) (*entity.ActivationCode, error) {
	q := r.db.WithContext(ctx)
	// SQLite has no FOR UPDATE in its grammar; its single-writer transactions
	// serialize on their own.
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var code entity.ActivationCode
	if err := q.Where("user_id = ?", userID).First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrActivationCodeNotFound
		}
		return nil, err
	}
	return &code, nil
}

// MarkUsed sets used = true for the user's code row.
func (r *activationCodeGorm) MarkUsed(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.ActivationCode{}).
		Where("user_id = ?", userID).
		Update("used", true).Error
}
