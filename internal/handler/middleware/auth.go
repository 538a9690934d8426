package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"barkeep/internal/pkg/cookie"
	"barkeep/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxHostIDKey = "host_id"

type AuthMiddleware struct {
	auth commands.AuthCommands
}

func NewAuthMiddleware(auth commands.AuthCommands) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func extractToken(c *gin.Context) string {
	token := cookie.GetHostToken(c)
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}
	}
	return token
}

func (m *AuthMiddleware) RequireHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		hostID, err := m.auth.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxHostIDKey, hostID)
		c.Next()
	}
}

// OptionalHost authenticates when a token is present but never aborts. Routes
// that serve both hosts and guests decide per request whether a host identity
// is required.
func (m *AuthMiddleware) OptionalHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		hostID, err := m.auth.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxHostIDKey, hostID)
		c.Next()
	}
}

func GetHostID(c *gin.Context) (uuid.UUID, bool) {
	hostID, exists := c.Get(ctxHostIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := hostID.(uuid.UUID)
	return id, ok
}
