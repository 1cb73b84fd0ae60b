package middleware

import (
	"context"
	"net/http"
	"strings"

	"hotel-frontdesk-backend/internal/models"
	"hotel-frontdesk-backend/internal/service"
	"hotel-frontdesk-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginPath is where clients without a session are sent
const LoginPath = "/"

// Context keys set by SessionGuard
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// SessionChecker resolves an access token to the signed-in staff user
type SessionChecker interface {
	GetCurrentSession(ctx context.Context, accessToken string) (*service.UserResponse, error)
}

// SessionGuard confirms a live session before any protected handler runs.
// Requests without one are answered 401 with a redirect to the login page.
func SessionGuard(sessions SessionChecker, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.GetCurrentSession(c.Request.Context(), bearerToken(c))
		if err != nil {
			log.Debug("session check failed", zap.String("path", c.FullPath()), zap.Error(err))
			utils.RedirectErrorResponse(c, http.StatusUnauthorized, "Inicia sesión para continuar.", LoginPath)
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextEmail, user.Email)
		c.Set(ContextRole, user.Role)

		c.Next()
	}
}

// RequireAdmin checks if the authenticated user has admin role
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			utils.RedirectErrorResponse(c, http.StatusUnauthorized, "Inicia sesión para continuar.", LoginPath)
			return
		}

		if role != models.RoleAdmin {
			utils.ErrorResponse(c, http.StatusForbidden, "Se requiere rol de administrador.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// UserID returns the staff user id set by SessionGuard
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
