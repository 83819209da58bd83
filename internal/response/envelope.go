// Package response writes the {success, data|message} JSON envelope.
package response

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
)

// OK writes a success envelope. Keys in extra (count, total, message, ...)
// sit next to data.
func OK(c *gin.Context, status int, data any, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// Fail maps err onto a status code and writes the failure envelope.
// Server errors are logged with their cause and rendered generically.
func Fail(c *gin.Context, log *zap.Logger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindServer && log != nil {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	Abort(c, apperr.StatusCode(kind), apperr.Message(err))
}

// Abort writes the failure envelope and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
