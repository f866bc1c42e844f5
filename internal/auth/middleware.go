package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "loadout-backend/internal/errors"
	"loadout-backend/internal/logger"
	"loadout-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		if err := setUserContext(c, claims); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" || tokenString == c.GetHeader("Authorization") {
			c.Next()
			return
		}

		if claims, err := m.service.ValidateJWT(tokenString); err == nil {
			_ = setUserContext(c, claims)
		}

		c.Next()
	}
}

// RequireAdmin rejects callers whose session lacks the admin claim. It must
// run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := GetAuthClaims(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !claims.Admin {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrAdminRequired.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

func setUserContext(c *gin.Context, claims *AuthClaims) error {
	actor, err := claims.Actor()
	if err != nil {
		return err
	}

	c.Set("user_id", actor.UserID)
	c.Set("username", actor.Username)
	c.Set("admin", actor.Admin)
	c.Set("auth_claims", claims)

	ctx := repository.WithActor(c.Request.Context(), actor)
	ctx = context.WithValue(ctx, logger.UserIDKey, actor.UserID.String())
	ctx = context.WithValue(ctx, logger.UsernameKey, actor.Username)
	c.Request = c.Request.WithContext(ctx)
	return nil
}

// GetUserID extracts user ID from gin context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUsername extracts username from gin context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}

	usernameStr, ok := username.(string)
	return usernameStr, ok
}

// IsAdmin reports whether the caller's session carries the admin claim
func IsAdmin(c *gin.Context) bool {
	return c.GetBool("admin")
}

// GetAuthClaims extracts full auth claims from gin context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
