package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u := NewUser("ana@example.com", "$2a$hash", "Ana García", RoleCustomer)

	assert.True(t, u.Active)
	assert.False(t, u.EmailVerified)
	assert.Equal(t, RoleCustomer, u.Role)
	assert.Equal(t, "Argentina", u.Address.Country)
	assert.False(t, u.IsAdmin())

	admin := NewUser("admin@example.com", "$2a$hash", "Admin", RoleAdmin)
	assert.True(t, admin.IsAdmin())
}

func TestUser_EmailVerification(t *testing.T) {
	now := time.Now()

	t.Run("valid token verifies and is consumed", func(t *testing.T) {
		u := NewUser("ana@example.com", "h", "Ana", RoleCustomer)
		u.BeginEmailVerification("tok123", now)

		require.NoError(t, u.ConfirmEmail("tok123", now.Add(time.Hour)))
		assert.True(t, u.EmailVerified)
		assert.Empty(t, u.VerificationToken)
		assert.Nil(t, u.VerificationExpiry)

		// Consumed: a replay fails.
		assert.ErrorIs(t, u.ConfirmEmail("tok123", now), ErrVerifyTokenInvalid)
	})

	t.Run("wrong token", func(t *testing.T) {
		u := NewUser("ana@example.com", "h", "Ana", RoleCustomer)
		u.BeginEmailVerification("tok123", now)
		assert.ErrorIs(t, u.ConfirmEmail("otro", now), ErrVerifyTokenInvalid)
		assert.False(t, u.EmailVerified)
	})

	t.Run("expired token", func(t *testing.T) {
		u := NewUser("ana@example.com", "h", "Ana", RoleCustomer)
		u.BeginEmailVerification("tok123", now)
		err := u.ConfirmEmail("tok123", now.Add(VerificationTokenTTL+time.Minute))
		assert.ErrorIs(t, err, ErrVerifyTokenInvalid)
	})
}

func TestUser_PasswordReset(t *testing.T) {
	now := time.Now()

	t.Run("valid token replaces hash and is consumed", func(t *testing.T) {
		u := NewUser("ana@example.com", "oldhash", "Ana", RoleCustomer)
		u.BeginPasswordReset("reset123", now)

		require.NoError(t, u.CompletePasswordReset("reset123", "newhash", now.Add(time.Hour)))
		assert.Equal(t, "newhash", u.PasswordHash)
		assert.Empty(t, u.ResetToken)

		// Single use.
		err := u.CompletePasswordReset("reset123", "otherhash", now)
		assert.ErrorIs(t, err, ErrResetTokenInvalid)
		assert.Equal(t, "newhash", u.PasswordHash)
	})

	t.Run("expired after two hours", func(t *testing.T) {
		u := NewUser("ana@example.com", "oldhash", "Ana", RoleCustomer)
		u.BeginPasswordReset("reset123", now)
		err := u.CompletePasswordReset("reset123", "newhash", now.Add(ResetTokenTTL+time.Second))
		assert.ErrorIs(t, err, ErrResetTokenInvalid)
		assert.Equal(t, "oldhash", u.PasswordHash)
	})

	t.Run("wrong token", func(t *testing.T) {
		u := NewUser("ana@example.com", "oldhash", "Ana", RoleCustomer)
		u.BeginPasswordReset("reset123", now)
		err := u.CompletePasswordReset("otro", "newhash", now)
		assert.ErrorIs(t, err, ErrResetTokenInvalid)
	})
}

func TestService_Passwords(t *testing.T) {
	svc := NewService()

	hash, err := svc.HashPassword("secreta123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreta123", hash)

	assert.True(t, svc.VerifyPassword(hash, "secreta123"))
	assert.False(t, svc.VerifyPassword(hash, "equivocada"))
}

func TestService_NewToken(t *testing.T) {
	svc := NewService()

	a, err := svc.NewToken()
	require.NoError(t, err)
	b, err := svc.NewToken()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
