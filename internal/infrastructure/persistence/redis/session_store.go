package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

const sessionPrefix = "tienda:sesion:"

// SessionStore keeps one login session hash per user. Login writes it with
// the bearer token's lifetime as TTL and logout deletes it, so the key set
// doubles as the list of signed-in users.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("%s%d", sessionPrefix, userID)
}

// Save writes the session hash and sets its expiry.
func (s *SessionStore) Save(ctx context.Context, userID uint, data map[string]interface{}, ttl time.Duration) error {
	key := sessionKey(userID)
	if err := s.client.HSet(ctx, key, data).Err(); err != nil {
		return apperrors.Wrap(err, "error al guardar la sesión")
	}
	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "error al establecer la expiración de la sesión")
	}
	return nil
}

// Delete removes the user's session on logout.
func (s *SessionStore) Delete(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return apperrors.Wrap(err, "error al eliminar la sesión")
	}
	return nil
}
