package user

import (
	"context"

	"github.com/tiendamoderna/tienda/internal/domain/user"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// ProfileUseCase serves the public account lookups.
type ProfileUseCase struct {
	userRepo user.Repository
}

func NewProfileUseCase(userRepo user.Repository) *ProfileUseCase {
	return &ProfileUseCase{userRepo: userRepo}
}

// GetByID loads an account profile. Customers only see their own.
func (uc *ProfileUseCase) GetByID(ctx context.Context, id, requesterID uint, isAdmin bool) (*user.User, error) {
	if !isAdmin && id != requesterID {
		return nil, apperrors.ErrForbidden
	}
	return uc.userRepo.FindByID(ctx, id)
}

// EmailExists probes whether an email is already registered, for live
// validation on the signup form.
func (uc *ProfileUseCase) EmailExists(ctx context.Context, email string) (bool, error) {
	return uc.userRepo.ExistsByEmail(ctx, email)
}
