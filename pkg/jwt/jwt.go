package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// Manager signs and verifies the bearer tokens the API hands out on register
// and login. Tokens are HS256 and carry identity plus role for the
// authorization middleware.
type Manager struct {
	secret string
	issuer string
	expire time.Duration
}

// NewManager creates a token manager. expire is the bearer token lifetime
// (24h in the default configuration).
func NewManager(secret, issuer string, expire time.Duration) *Manager {
	return &Manager{secret: secret, issuer: issuer, expire: expire}
}

// Claims are the custom claims embedded in every token.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Token is a signed bearer token plus its expiry instant.
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Generate signs a token for the given user.
func (m *Manager) Generate(userID uint, email, fullName, role string) (*Token, error) {
	now := time.Now()
	expiresAt := now.Add(m.expire)

	claims := Claims{
		UserID:   userID,
		Email:    email,
		FullName: fullName,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return nil, apperrors.Wrap(err, "error al generar el token")
	}

	return &Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Parse verifies the signature and validity window and returns the claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// RemainingTTL reports how long the token stays valid, for blacklisting it on
// logout exactly until its natural expiry.
func (m *Manager) RemainingTTL(claims *Claims) time.Duration {
	if claims.ExpiresAt == nil {
		return m.expire
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 0 {
		return 0
	}
	return ttl
}
