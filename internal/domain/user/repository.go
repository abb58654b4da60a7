package user

import (
	"context"
)

// Repository is implemented by the persistence layer. Implementations map
// driver duplicate-key failures on the email column to ErrEmailTaken and
// missing rows to ErrNotFound.
type Repository interface {
	Create(ctx context.Context, u *User) error

	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByVerificationToken resolves the account holding a pending
	// email-verification token.
	FindByVerificationToken(ctx context.Context, token string) (*User, error)

	// FindByResetToken resolves the account holding a pending
	// password-reset token.
	FindByResetToken(ctx context.Context, token string) (*User, error)

	Update(ctx context.Context, u *User) error

	// ExistsByEmail probes for an email without loading the row.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Count returns the number of registered accounts. The first account
	// ever registered is promoted to administrator.
	Count(ctx context.Context) (int64, error)
}
