package user

import (
	"context"
	"time"

	"github.com/tiendamoderna/tienda/pkg/jwt"
)

// TokenBlacklist revokes bearer tokens until their natural expiry.
// Implemented by the redis token store.
type TokenBlacklist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
}

// LogoutUseCase deletes the user's session and blacklists the presented
// token so it stops working immediately instead of at expiry.
type LogoutUseCase struct {
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	sessions  SessionStore
}

func NewLogoutUseCase(jwtMgr *jwt.Manager, blacklist TokenBlacklist, sessions SessionStore) *LogoutUseCase {
	return &LogoutUseCase{jwtMgr: jwtMgr, blacklist: blacklist, sessions: sessions}
}

// Execute parses the token to learn who is logging out and for how long the
// token would otherwise stay valid, then drops the session and blacklists
// the token for exactly that long.
func (uc *LogoutUseCase) Execute(ctx context.Context, tokenString string) error {
	claims, err := uc.jwtMgr.Parse(tokenString)
	if err != nil {
		return err
	}

	if err := uc.sessions.Delete(ctx, claims.UserID); err != nil {
		return err
	}

	ttl := uc.jwtMgr.RemainingTTL(claims)
	if ttl <= 0 {
		return nil
	}
	return uc.blacklist.Add(ctx, tokenString, ttl)
}
