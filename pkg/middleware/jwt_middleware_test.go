package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arogya/pkg/utils"
)

type fakeResolver struct {
	user *AuthUser
	err  error
}

func (f fakeResolver) ResolveUser(ctx context.Context, userID string) (*AuthUser, error) {
	return f.user, f.err
}

func newAuthTestRouter(resolver UserResolver, admin bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuthMiddleware(resolver)}
	if admin {
		handlers = append(handlers, AdminMiddleware())
	}
	handlers = append(handlers, func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	r.GET("/protected", handlers...)
	return r
}

func doAuthRequest(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddlewareAcceptsValidToken(t *testing.T) {
	userID := uuid.New()
	resolver := fakeResolver{user: &AuthUser{ID: userID, Email: "a@example.com", IsActive: true}}
	r := newAuthTestRouter(resolver, false)

	token, err := utils.CreateToken(userID)
	require.NoError(t, err)

	w := doAuthRequest(t, r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@example.com")
}

func TestJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r := newAuthTestRouter(fakeResolver{}, false)

	w := doAuthRequest(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareRejectsBadToken(t *testing.T) {
	r := newAuthTestRouter(fakeResolver{}, false)

	w := doAuthRequest(t, r, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareUnknownUser(t *testing.T) {
	resolver := fakeResolver{err: utils.ErrUserNotFound}
	r := newAuthTestRouter(resolver, false)

	token, err := utils.CreateToken(uuid.New())
	require.NoError(t, err)

	w := doAuthRequest(t, r, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJWTAuthMiddlewareInactiveUser(t *testing.T) {
	resolver := fakeResolver{user: &AuthUser{ID: uuid.New(), IsActive: false}}
	r := newAuthTestRouter(resolver, false)

	token, err := utils.CreateToken(uuid.New())
	require.NoError(t, err)

	w := doAuthRequest(t, r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOptionalAuthMiddlewareAnonymousPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", OptionalAuthMiddleware(fakeResolver{}), func(c *gin.Context) {
		_, ok := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestOptionalAuthMiddlewareResolvesValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resolver := fakeResolver{user: &AuthUser{ID: uuid.New(), Email: "a@example.com", IsActive: true}}
	r := gin.New()
	r.GET("/open", OptionalAuthMiddleware(resolver), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})

	token, err := utils.CreateToken(uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@example.com")
}

func TestAdminMiddlewareBlocksNonAdmin(t *testing.T) {
	resolver := fakeResolver{user: &AuthUser{ID: uuid.New(), IsActive: true, IsAdmin: false}}
	r := newAuthTestRouter(resolver, true)

	token, err := utils.CreateToken(uuid.New())
	require.NoError(t, err)

	w := doAuthRequest(t, r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	resolver := fakeResolver{user: &AuthUser{ID: uuid.New(), Email: "root@example.com", IsActive: true, IsAdmin: true}}
	r := newAuthTestRouter(resolver, true)

	token, err := utils.CreateToken(uuid.New())
	require.NoError(t, err)

	w := doAuthRequest(t, r, token)
	assert.Equal(t, http.StatusOK, w.Code)
}
