package user

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/user"
)

// PasswordUseCase groups the password flows: authenticated change,
// reset request and token-gated reset.
type PasswordUseCase struct {
	userRepo  user.Repository
	userSvc   *user.Service
	publisher EventPublisher
}

func NewPasswordUseCase(userRepo user.Repository, userSvc *user.Service, publisher EventPublisher) *PasswordUseCase {
	return &PasswordUseCase{userRepo: userRepo, userSvc: userSvc, publisher: publisher}
}

// Change replaces the password of a logged-in user after verifying the
// current one.
func (uc *PasswordUseCase) Change(ctx context.Context, userID uint, current, newPassword string) error {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !uc.userSvc.VerifyPassword(u.PasswordHash, current) {
		return user.ErrInvalidCredentials
	}

	hash, err := uc.userSvc.HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, u)
}

// RequestReset issues a reset token with a two-hour expiry. Unknown emails
// succeed silently so the endpoint cannot be used to enumerate accounts.
func (uc *PasswordUseCase) RequestReset(ctx context.Context, email string) error {
	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := uc.userSvc.NewToken()
	if err != nil {
		return err
	}
	u.BeginPasswordReset(token, time.Now())
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return err
	}

	if pubErr := uc.publisher.Publish(ctx, "user.password_reset_requested", map[string]interface{}{
		"user_id":     u.ID,
		"email":       u.Email,
		"reset_token": token,
	}); pubErr != nil {
		log.Printf("event publish failed: user.password_reset_requested: %v", pubErr)
	}
	return nil
}

// Reset consumes a reset token. Invalid, mismatched and expired tokens all
// fail with ErrResetTokenInvalid.
func (uc *PasswordUseCase) Reset(ctx context.Context, token, newPassword string) error {
	u, err := uc.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrResetTokenInvalid
		}
		return err
	}

	hash, err := uc.userSvc.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := u.CompletePasswordReset(token, hash, time.Now()); err != nil {
		return err
	}
	return uc.userRepo.Update(ctx, u)
}
