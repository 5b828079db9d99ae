package middleware

import (
	"net/http"
	"strings"

	"github.com/docs2ai/gateway/internal/infrastructure/auth"
	"github.com/docs2ai/gateway/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware
const (
	ClaimsKey     = "jwt_claims"
	UserIDKey     = "jwt_user_id"
	LoginKey      = "jwt_login"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// AuthConfig configures the bearer token middleware
type AuthConfig struct {
	JWTService *auth.JWTService
	// SkipPaths are exact paths served without authentication
	SkipPaths []string
	Logger    *zap.Logger
}

// DefaultAuthConfig returns the standard skip list
func DefaultAuthConfig(jwtService *auth.JWTService, log *zap.Logger) AuthConfig {
	return AuthConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/auth/login",
		},
		Logger: log,
	}
}

// Auth enforces a bearer JWT on every route outside the skip list
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		header := c.GetHeader(AuthHeaderKey)
		if header == "" {
			abortUnauthorized(c, cfg, nil, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, cfg, nil, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(header, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, cfg, nil, "Missing token")
			return
		}

		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if err == auth.ErrExpiredToken {
				message = "Token has expired"
			}
			abortUnauthorized(c, cfg, err, message)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.UserID)
		c.Set(LoginKey, claims.Login)

		// Propagate the user id into the request context for log correlation
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, cfg AuthConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("Authentication failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("reason", message),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
	})
}

// GetUserID returns the authenticated user id, zero when unauthenticated
func GetUserID(c *gin.Context) int64 {
	if v, exists := c.Get(UserIDKey); exists {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// GetLogin returns the authenticated login, empty when unauthenticated
func GetLogin(c *gin.Context) string {
	if v, exists := c.Get(LoginKey); exists {
		if login, ok := v.(string); ok {
			return login
		}
	}
	return ""
}
