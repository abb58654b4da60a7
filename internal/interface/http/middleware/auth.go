package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tiendamoderna/tienda/internal/domain/user"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
	"github.com/tiendamoderna/tienda/pkg/jwt"
	"github.com/tiendamoderna/tienda/pkg/response"
)

// Blacklist answers whether a bearer token has been revoked. Implemented by
// the redis token store.
type Blacklist interface {
	Contains(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware extracts and validates the bearer token, consults the
// blacklist and injects the claims into the gin context.
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  Blacklist
}

func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist Blacklist) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager, blacklist: blacklist}
}

// RequireAuth rejects requests without a valid token with 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		blacklisted, err := m.blacklist.Contains(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if blacklisted {
			response.Error(c, apperrors.ErrTokenExpired)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.Parse(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("token", tokenString)

		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Runs after
// RequireAuth; a mismatch yields 403.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := user.Role(GetRole(c))
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		response.Error(c, apperrors.ErrForbidden)
		c.Abort()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// GetUserID returns the authenticated user's id, 0 when anonymous.
func GetUserID(c *gin.Context) uint {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetRole returns the authenticated user's role, empty when anonymous.
func GetRole(c *gin.Context) string {
	if v, exists := c.Get("role"); exists {
		if r, ok := v.(string); ok {
			return r
		}
	}
	return ""
}

// IsAdmin reports whether the request carries the administrator role.
func IsAdmin(c *gin.Context) bool {
	return user.Role(GetRole(c)) == user.RoleAdmin
}

// GetToken returns the raw bearer token the request presented.
func GetToken(c *gin.Context) string {
	if v, exists := c.Get("token"); exists {
		if t, ok := v.(string); ok {
			return t
		}
	}
	return ""
}
