package user

import (
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// Identity domain errors.
var (
	// ErrNotFound is returned when an account lookup misses.
	ErrNotFound = apperrors.ErrUserNotFound

	// ErrEmailTaken is returned on registration with an existing email.
	ErrEmailTaken = apperrors.ErrEmailDuplicate

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so the caller cannot tell which one failed.
	ErrInvalidCredentials = apperrors.ErrInvalidCredentials

	// ErrAccountDisabled is returned on login to a deactivated account.
	ErrAccountDisabled = apperrors.ErrAccountDisabled

	// ErrResetTokenInvalid covers mismatched, consumed and expired reset tokens.
	ErrResetTokenInvalid = apperrors.New(apperrors.ErrCodeResetTokenInvalid, "token de restablecimiento inválido o expirado")

	// ErrVerifyTokenInvalid covers mismatched, consumed and expired
	// verification tokens.
	ErrVerifyTokenInvalid = apperrors.New(apperrors.ErrCodeVerifyTokenInvalid, "token de verificación inválido o expirado")
)
