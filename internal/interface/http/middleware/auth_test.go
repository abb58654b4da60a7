package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendamoderna/tienda/internal/domain/user"
	"github.com/tiendamoderna/tienda/pkg/jwt"
)

type fakeBlacklist struct {
	revoked map[string]bool
}

func (f *fakeBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func newAuthRouter(mw *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/privado", mw.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c),
			"role":    GetRole(c),
		})
	})
	r.GET("/admin", mw.RequireAuth(), mw.RequireRole(user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	mgr := jwt.NewManager("test-secret", "tienda-test", time.Hour)
	blacklist := &fakeBlacklist{revoked: map[string]bool{}}
	router := newAuthRouter(NewAuthMiddleware(mgr, blacklist))

	token, err := mgr.Generate(7, "ana@example.com", "Ana", "customer")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := doRequest(router, "/privado", "Bearer "+token.Value)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
	})

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(router, "/privado", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := doRequest(router, "/privado", "Token "+token.Value)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doRequest(router, "/privado", "Bearer no.es.un.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("blacklisted token", func(t *testing.T) {
		blacklist.revoked[token.Value] = true
		w := doRequest(router, "/privado", "Bearer "+token.Value)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		delete(blacklist.revoked, token.Value)
	})
}

func TestRequireRole(t *testing.T) {
	mgr := jwt.NewManager("test-secret", "tienda-test", time.Hour)
	router := newAuthRouter(NewAuthMiddleware(mgr, &fakeBlacklist{revoked: map[string]bool{}}))

	customer, err := mgr.Generate(7, "ana@example.com", "Ana", "customer")
	require.NoError(t, err)
	admin, err := mgr.Generate(1, "admin@example.com", "Admin", "admin")
	require.NoError(t, err)

	w := doRequest(router, "/admin", "Bearer "+customer.Value)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, "/admin", "Bearer "+admin.Value)
	assert.Equal(t, http.StatusOK, w.Code)
}
