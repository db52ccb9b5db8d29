package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"venture-link.backend/pkg/jwt"
	"venture-link.backend/pkg/logger"
	"venture-link.backend/pkg/redis"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// SessionIDHeader carries a server-side session id as an alternative to a bearer token
	SessionIDHeader = "X-Session-ID"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// ProfileIDKey is the context key for the authenticated profile ID
	ProfileIDKey = "profileId"
	// ProfileEmailKey is the context key for the authenticated email
	ProfileEmailKey = "profileEmail"
	// ProfileRoleKey is the context key for the authenticated role
	ProfileRoleKey = "profileRole"
)

// AuthMiddleware authenticates requests. A request carries either a bearer
// token or a session id; both resolve to the same JWT claims, so every role
// including admin flows through one identity.
func AuthMiddleware(jwtService *jwt.JWTService, sessions *redis.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c, sessions)
		if err != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err, "status": http.StatusUnauthorized})
			return
		}

		claims, validateErr := jwtService.ValidateToken(tokenString)
		if validateErr != nil {
			logger.Warn(c.Request.Context(), "token validation failed",
				zap.String("path", c.Request.URL.Path), zap.Error(validateErr))
			msg := "invalid token"
			if validateErr == jwt.ErrExpiredToken {
				msg = "token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg, "status": http.StatusUnauthorized})
			return
		}

		c.Set(ProfileIDKey, claims.ProfileID)
		c.Set(ProfileEmailKey, claims.Email)
		c.Set(ProfileRoleKey, claims.Role)

		c.Next()
	}
}

// extractToken resolves the access token from the bearer header or, failing
// that, from the session referenced by X-Session-ID. Returns an error message
// when neither yields a token.
func extractToken(c *gin.Context, sessions *redis.SessionStore) (string, string) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			return "", "invalid authorization format, use: Bearer <token>"
		}
		return strings.TrimPrefix(authHeader, BearerPrefix), ""
	}

	sessionID := c.GetHeader(SessionIDHeader)
	if sessionID == "" {
		return "", "authorization required"
	}
	if sessions == nil {
		return "", "session authentication is not enabled"
	}

	data, err := sessions.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		return "", "invalid or expired session"
	}
	return data.AccessToken, ""
}

// GetProfileID gets the authenticated profile ID from context
func GetProfileID(c *gin.Context) (uuid.UUID, bool) {
	profileID, exists := c.Get(ProfileIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return profileID.(uuid.UUID), true
}

// GetProfileEmail gets the authenticated email from context
func GetProfileEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ProfileEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetProfileRole gets the authenticated role from context
func GetProfileRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ProfileRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileRole, exists := GetProfileRole(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "role not found", "status": http.StatusUnauthorized})
			return
		}

		for _, role := range roles {
			if profileRole == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions", "status": http.StatusForbidden})
	}
}

// RequireAdmin creates a middleware that requires the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole("admin")
}
