package user

import (
	"context"
	"errors"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/user"
)

// VerifyEmailUseCase consumes an email-verification token and marks the
// account verified.
type VerifyEmailUseCase struct {
	userRepo user.Repository
}

func NewVerifyEmailUseCase(userRepo user.Repository) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{userRepo: userRepo}
}

// Execute verifies the email. Unknown, mismatched and expired tokens fail
// with ErrVerifyTokenInvalid, same shape as the password-reset flow.
func (uc *VerifyEmailUseCase) Execute(ctx context.Context, token string) error {
	u, err := uc.userRepo.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrVerifyTokenInvalid
		}
		return err
	}

	if err := u.ConfirmEmail(token, time.Now()); err != nil {
		return err
	}
	return uc.userRepo.Update(ctx, u)
}
