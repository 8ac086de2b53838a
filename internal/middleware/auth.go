package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/assistco/assist-api/internal/constants"
	apierrors "github.com/assistco/assist-api/internal/errors"
	"github.com/assistco/assist-api/internal/services"
)

// RequireAuth validates the bearer token on every protected route. The
// token must map to a non-revoked key belonging to an active account.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := extractToken(c.GetHeader("Authorization"))
		if key == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		principal, err := authService.Authenticate(key)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserType, principal.UserType)
		c.Set(constants.ContextKeyUserID, principal.UserID)
		c.Next()
	}
}

func extractToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") && !strings.EqualFold(parts[0], "Token") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetPrincipal retrieves the authenticated account from context
func GetPrincipal(c *gin.Context) (services.Principal, bool) {
	userType, ok := c.Get(constants.ContextKeyUserType)
	if !ok {
		return services.Principal{}, false
	}
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return services.Principal{}, false
	}

	t, ok := userType.(string)
	if !ok {
		return services.Principal{}, false
	}
	id, ok := userID.(uint)
	if !ok {
		return services.Principal{}, false
	}

	return services.Principal{UserType: t, UserID: id}, true
}
