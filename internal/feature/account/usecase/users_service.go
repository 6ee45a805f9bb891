package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"gorm.io/gorm"

	"registration_backend/internal/feature/account/domain/entity"
	"registration_backend/internal/platform/email"
	"registration_backend/internal/platform/hash"
)

// dummyPasswordHash is compared against when a user does not exist, so that
// VerifyCredentials costs the same whether or not the email is registered.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts persistence for user entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters). Implementations operate on the handle they were
// constructed over, which may be a transaction.
type UserRepository interface {
	// Create persists a new inactive user. It returns ErrUserAlreadyExists when
	// the email is already taken, enforced by the storage uniqueness constraint.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Activate sets is_active = true for the user. A second call is a no-op.
	Activate(ctx context.Context, id uint) error
}

// ActivationCodeRepository abstracts persistence for the single pending
// activation code per user.
type ActivationCodeRepository interface {
	// CreateOrReplace upserts the code row for the user, resetting used to false.
	CreateOrReplace(ctx context.Context, userID uint, hashedCode string, expiresAt time.Time) error

	// GetForUpdate reads the code row holding an exclusive row lock until the
	// enclosing transaction ends, or returns ErrActivationCodeNotFound.
	GetForUpdate(ctx context.Context, userID uint) (*entity.ActivationCode, error)

	// MarkUsed sets used = true for the user's code row.
	MarkUsed(ctx context.Context, userID uint) error
}

// Notifier delivers the activation code to the user.
type Notifier interface {
	Send(ctx context.Context, msg email.Message) error
}

// usersService orchestrates registration and activation. Repositories are
// constructed per call over an explicit connection or transaction handle
// rather than over shared state, so a transaction's writes stay atomic and the
// service is trivially testable against an in-memory database.
type usersService struct {
	db        *gorm.DB
	users     func(db *gorm.DB) UserRepository
	codes     func(db *gorm.DB) ActivationCodeRepository
	notifier  Notifier
	codeTTL   time.Duration
	emailFrom string
}

// NewUsersService creates a new usersService with injected dependencies.
func NewUsersService(
	db *gorm.DB,
	users func(db *gorm.DB) UserRepository,
	codes func(db *gorm.DB) ActivationCodeRepository,
	notifier Notifier,
	codeTTL time.Duration,
	emailFrom string,
) *usersService {
	return &usersService{
		db:        db,
		users:     users,
		codes:     codes,
		notifier:  notifier,
		codeTTL:   codeTTL,
		emailFrom: emailFrom,
	}
}

// generateActivationCode draws a uniformly random 4-digit code from crypto/rand,
// preserving leading zeros. The code is a short authentication secret, so a
// predictable PRNG is not acceptable.
func generateActivationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate activation code: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// Register creates an inactive user with a hashed password, stores a hashed
// time-boxed activation code, and emails the plaintext code.
//
// The user and code rows are written in one transaction. The email is sent
// after commit: a delivery failure never rolls the registration back, it is
// surfaced as ErrActivationEmailFailed alongside the new user id.
func (s *usersService) Register(ctx context.Context, emailAddr, password string) (uint, error) {
	var (
		userID uint
		code   string
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users(tx)

		if _, err := users.FindByEmail(ctx, emailAddr); err == nil {
			return ErrUserAlreadyExists
		} else if !errors.Is(err, ErrUserNotFound) {
			return err
		}

		hashed, err := hash.Password(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		// The uniqueness constraint closes the race left open by the lookup
		// above: a concurrent insert surfaces as ErrUserAlreadyExists here.
		user := &entity.User{Email: emailAddr, HashedPassword: hashed}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		userID = user.ID

		code, err = generateActivationCode()
		if err != nil {
			return err
		}

		codes := s.codes(tx)
		expiresAt := time.Now().Add(s.codeTTL)
		return codes.CreateOrReplace(ctx, user.ID, hash.ActivationCode(code), expiresAt)
	})
	if err != nil {
		return 0, err
	}

	msg := email.Message{
		To:      emailAddr,
		From:    s.emailFrom,
		Subject: "Your activation code",
		Body:    fmt.Sprintf("Your activation code is %s. It expires in %s.", code, s.codeTTL),
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		slog.Error("activation email delivery failed", "user_id", userID, "error", err)
		return userID, fmt.Errorf("%w: %v", ErrActivationEmailFailed, err)
	}

	return userID, nil
}

// Activate validates the supplied code for the user and atomically marks the
// account active and the code used.
//
// The code row is locked before the user is read, so concurrent activation
// attempts for the same user serialize: the loser proceeds only after the
// winner's commit and then observes the already-active account.
//
// The checks form a strict priority ladder: unknown user before already-active,
// before missing code, before code mismatch, before expiry. Callers rely on
// this ordering; do not rearrange it.
func (s *usersService) Activate(ctx context.Context, userID uint, code string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		codes := s.codes(tx)
		ac, codeErr := codes.GetForUpdate(ctx, userID)
		if codeErr != nil && !errors.Is(codeErr, ErrActivationCodeNotFound) {
			return codeErr
		}

		users := s.users(tx)
		user, err := users.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				// Do not leak whether the id exists.
				return ErrInvalidCredentials
			}
			return err
		}
		if user.IsActive {
			return ErrUserAlreadyActive
		}
		if codeErr != nil {
			return ErrInvalidActivationCode
		}
		if ac.Used || !hash.VerifyActivationCode(code, ac.HashedCode) {
			return ErrInvalidActivationCode
		}
		if time.Now().After(ac.ExpiresAt) {
			return ErrActivationCodeExpired
		}

		if err := users.Activate(ctx, userID); err != nil {
			return err
		}
		return codes.MarkUsed(ctx, userID)
	})
}

// VerifyCredentials resolves an email/password pair to a user id.
//
// It is read-only and takes no locks. The account does not need to be active:
// activation state is checked by the activation operation itself, not at login.
// To mitigate timing attacks a bcrypt comparison runs even when the user does
// not exist.
func (s *usersService) VerifyCredentials(ctx context.Context, emailAddr, password string) (uint, error) {
	user, err := s.users(s.db).FindByEmail(ctx, emailAddr)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return 0, err
	}

	hashed := dummyPasswordHash
	if err == nil {
		hashed = user.HashedPassword
	}

	ok := hash.VerifyPassword(password, hashed)
	if err != nil || !ok {
		return 0, ErrInvalidCredentials
	}
	return user.ID, nil
}
