package user

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/user"
	"github.com/tiendamoderna/tienda/pkg/jwt"
)

// SessionStore records the active login session per user. Implemented by the
// redis session store.
type SessionStore interface {
	Save(ctx context.Context, userID uint, data map[string]interface{}, ttl time.Duration) error
	Delete(ctx context.Context, userID uint) error
}

// LoginUseCase authenticates by email and password, signs a bearer token and
// records the session.
type LoginUseCase struct {
	userRepo user.Repository
	userSvc  *user.Service
	jwtMgr   *jwt.Manager
	sessions SessionStore
}

func NewLoginUseCase(userRepo user.Repository, userSvc *user.Service, jwtMgr *jwt.Manager, sessions SessionStore) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, userSvc: userSvc, jwtMgr: jwtMgr, sessions: sessions}
}

// Execute authenticates. Unknown email and wrong password both return
// ErrInvalidCredentials so callers cannot probe for registered emails.
func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.userSvc.VerifyPassword(u.PasswordHash, password) {
		return nil, user.ErrInvalidCredentials
	}
	if !u.Active {
		return nil, user.ErrAccountDisabled
	}

	now := time.Now()
	u.StampLogin(now)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	token, err := uc.jwtMgr.Generate(u.ID, u.Email, u.FullName, string(u.Role))
	if err != nil {
		return nil, err
	}

	// The session lives as long as the token; a session write failure must
	// not turn away a correct login.
	session := map[string]interface{}{
		"user_id":  u.ID,
		"email":    u.Email,
		"login_at": now.Unix(),
	}
	if err := uc.sessions.Save(ctx, u.ID, session, time.Until(token.ExpiresAt)); err != nil {
		log.Printf("session save failed: user %d: %v", u.ID, err)
	}

	return &AuthResult{User: u, Token: token}, nil
}
