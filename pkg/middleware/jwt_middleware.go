package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"arogya/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthUser is the resolved caller attached to the request context.
type AuthUser struct {
	ID       uuid.UUID
	Email    string
	FullName string
	IsActive bool
	IsAdmin  bool
}

// UserResolver loads the user behind a token subject. The token itself
// carries no roles; activity and admin flags come from the store.
type UserResolver interface {
	ResolveUser(ctx context.Context, userID string) (*AuthUser, error)
}

const ContextUserKey = "auth_user"

func JWTAuthMiddleware(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveBearer(c, resolver)
		if err != nil {
			status := http.StatusUnauthorized
			switch {
			case errors.Is(err, utils.ErrUserNotFound):
				status = http.StatusNotFound
			case errors.Is(err, utils.ErrInactiveAccount):
				status = http.StatusForbidden
			}
			utils.RespondError(c, status, err.Error())
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid token is
// present and otherwise lets the request through anonymously.
func OptionalAuthMiddleware(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := resolveBearer(c, resolver); err == nil {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: admin only")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated caller set by the auth middleware.
func CurrentUser(c *gin.Context) (*AuthUser, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*AuthUser)
	return user, ok
}

func resolveBearer(c *gin.Context, resolver UserResolver) (*AuthUser, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, utils.ErrInvalidToken
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	user, err := resolver.ResolveUser(c.Request.Context(), claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, utils.ErrInactiveAccount
	}
	return user, nil
}
