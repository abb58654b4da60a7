package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

const blacklistPrefix = "tienda:token:blacklist:"

// TokenStore keeps the bearer-token blacklist in redis. Logout adds the
// presented token with its remaining lifetime as TTL; the auth middleware
// rejects blacklisted tokens. Keys expire on their own, so the blacklist
// never needs cleanup.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Add blacklists a token for ttl.
func (s *TokenStore) Add(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, blacklistPrefix+token, "1", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "error al invalidar el token")
	}
	return nil
}

// Contains reports whether a token has been blacklisted.
func (s *TokenStore) Contains(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "error al consultar el token")
	}
	return n > 0, nil
}
