package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sirajbinsyed/silverstar-server-local/internal/response"
)

func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			response.Abort(c, http.StatusForbidden, "Role missing")
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		response.Abort(c, http.StatusForbidden, "Access denied")
	}
}
