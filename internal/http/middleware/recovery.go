// README: Panic recovery middleware; converts panics into the generic error shape.
package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery catches panics from handlers, logs them, and replies with the
// generic internal-error body. The process never crashes and no stack trace
// reaches the client.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "An error occurred while processing your request",
					"details": fmt.Sprint(r),
				})
			}
		}()
		c.Next()
	}
}
