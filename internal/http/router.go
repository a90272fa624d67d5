// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scout/internal/http/handlers"
	"scout/internal/http/middleware"
)

// NewRouter wires middleware and routes. limiter may be nil when rate
// limiting is disabled.
func NewRouter(chatHandler *handlers.ChatHandler, log *zap.Logger, limiter gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Logging(log))
	r.Use(middleware.Recovery(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))
	if limiter != nil {
		r.Use(limiter)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.POST("/api/chat", chatHandler.Chat)

	return r
}
