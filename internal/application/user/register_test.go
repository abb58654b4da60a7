package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendamoderna/tienda/internal/domain/user"
	"github.com/tiendamoderna/tienda/pkg/jwt"
)

func newTestJWT() *jwt.Manager {
	return jwt.NewManager("test-secret", "tienda-test", time.Hour)
}

func TestRegister_FirstUserIsAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	publisher := &fakePublisher{}
	uc := NewRegisterUseCase(repo, user.NewService(), newTestJWT(), publisher)
	ctx := context.Background()

	first, err := uc.Execute(ctx, RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreta123",
		FullName: "Ana García",
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, first.User.Role)
	assert.NotEmpty(t, first.Token.Value)
	assert.NotEmpty(t, first.User.VerificationToken)
	assert.Equal(t, []string{"user.registered"}, publisher.events)

	second, err := uc.Execute(ctx, RegisterRequest{
		Email:    "bruno@example.com",
		Password: "secreta123",
		FullName: "Bruno Díaz",
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleCustomer, second.User.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUseCase(repo, user.NewService(), newTestJWT(), &fakePublisher{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, RegisterRequest{Email: "ana@example.com", Password: "secreta123", FullName: "Ana"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, RegisterRequest{Email: "ana@example.com", Password: "otra123456", FullName: "Otra Ana"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService()
	sessions := newFakeSessionStore()
	registerUC := NewRegisterUseCase(repo, svc, newTestJWT(), &fakePublisher{})
	loginUC := NewLoginUseCase(repo, svc, newTestJWT(), sessions)
	ctx := context.Background()

	_, err := registerUC.Execute(ctx, RegisterRequest{Email: "ana@example.com", Password: "secreta123", FullName: "Ana"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := loginUC.Execute(ctx, "ana@example.com", "secreta123")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token.Value)
		assert.NotNil(t, res.User.LastLoginAt)

		session, ok := sessions.saved[res.User.ID]
		require.True(t, ok)
		assert.Equal(t, "ana@example.com", session["email"])
	})

	t.Run("session write failure does not block login", func(t *testing.T) {
		broken := NewLoginUseCase(repo, svc, newTestJWT(), &fakeSessionStore{failWith: errors.New("redis caído")})
		res, err := broken.Execute(ctx, "ana@example.com", "secreta123")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token.Value)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := loginUC.Execute(ctx, "ana@example.com", "equivocada")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error", func(t *testing.T) {
		_, err := loginUC.Execute(ctx, "nadie@example.com", "secreta123")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		u, err := repo.FindByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		u.Active = false

		_, err = loginUC.Execute(ctx, "ana@example.com", "secreta123")
		assert.ErrorIs(t, err, user.ErrAccountDisabled)
		u.Active = true
	})
}

func TestLogout_RevokesTokenAndSession(t *testing.T) {
	mgr := newTestJWT()
	blacklist := &fakeBlacklist{}
	sessions := newFakeSessionStore()
	sessions.saved[1] = map[string]interface{}{"email": "ana@example.com"}
	uc := NewLogoutUseCase(mgr, blacklist, sessions)

	token, err := mgr.Generate(1, "ana@example.com", "Ana", "customer")
	require.NoError(t, err)

	require.NoError(t, uc.Execute(context.Background(), token.Value))
	assert.Equal(t, []string{token.Value}, blacklist.tokens)
	assert.Equal(t, []uint{1}, sessions.deleted)
	assert.Empty(t, sessions.saved)
}
