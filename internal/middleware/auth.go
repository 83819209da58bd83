package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sirajbinsyed/silverstar-server-local/internal/auth"
	"github.com/sirajbinsyed/silverstar-server-local/internal/response"
)

// AuthMiddleware rejects requests without a valid bearer token and
// attaches the caller's identity to the context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Invalid authorization format, use 'Bearer <token>'")
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Token is not valid")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}
