package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bank-backoffice.backend/internal/domain/entities"
	domainerrors "bank-backoffice.backend/internal/domain/errors"
	"bank-backoffice.backend/internal/interfaces/http/response"
	"bank-backoffice.backend/pkg/jwt"
	"bank-backoffice.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// UserRolesKey is the context key for the caller's role combination
	UserRolesKey = "userRoles"
)

// AuthMiddleware rejects requests without a valid access token
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			logger.Warn(c.Request.Context(), "Authorization header is missing", zap.String("path", c.Request.URL.Path))
			response.Abort(c, domainerrors.Unauthorized("Authorization header is required"))
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			logger.Warn(c.Request.Context(), "Invalid authorization format", zap.String("path", c.Request.URL.Path))
			response.Abort(c, domainerrors.Unauthorized("Invalid authorization format. Use: Bearer <token>"))
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		claims, err := jwtService.ValidateTokenOfType(tokenString, jwt.AccessToken)
		if err != nil {
			logger.Warn(c.Request.Context(), "Rejected bearer token", zap.String("path", c.Request.URL.Path), zap.Error(err))
			if errors.Is(err, jwt.ErrExpiredToken) {
				response.Abort(c, domainerrors.Unauthorized("Token has expired"))
				return
			}
			response.Abort(c, domainerrors.Unauthorized("Invalid token"))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRolesKey, claims.Roles)

		ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, claims.UserID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail gets the user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok
}

// GetUserRoles gets the caller's role combination from context
func GetUserRoles(c *gin.Context) (string, bool) {
	roles, exists := c.Get(UserRolesKey)
	if !exists {
		return "", false
	}
	s, ok := roles.(string)
	return s, ok
}

// RequireRole allows the request when the caller holds at least one of roles
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRoles, exists := GetUserRoles(c)
		if !exists {
			response.Abort(c, domainerrors.Unauthorized("User roles not found"))
			return
		}

		if !entities.HasAnyRole(userRoles, roles...) {
			logger.Warn(c.Request.Context(), "Insufficient permissions",
				zap.String("roles", userRoles), zap.String("path", c.Request.URL.Path))
			response.Abort(c, domainerrors.Forbidden("Insufficient permissions"))
			return
		}

		c.Next()
	}
}

// RequireAdmin allows ADMIN callers only
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(entities.UserRoleAdmin)
}

// RequireReader allows any authenticated role
func RequireReader() gin.HandlerFunc {
	return RequireRole(entities.UserRoleAdmin, entities.UserRoleUser)
}
