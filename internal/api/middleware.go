package api

import (
	"net/http"
	"time"

	"github.com/ZJUSCT/CSBoard/internal/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CORSMiddleware provides a configurable CORS middleware.
func CORSMiddleware(cfg config.CORS) gin.HandlerFunc {
	return func(c *gin.Context) {
		// If no origins are configured, do nothing.
		if len(cfg.AllowedOrigins) == 0 {
			c.Next()
			return
		}

		origin := c.Request.Header.Get("Origin")
		allowOrigin := ""
		for _, o := range cfg.AllowedOrigins {
			if o == "*" {
				allowOrigin = "*"
				break
			}
			if o == origin {
				allowOrigin = origin
				break
			}
		}

		if allowOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
		}
		c.Next()
	}
}

// RequestLogger logs every request through zap. gin's default logger writes
// to stdout, which belongs to the scoreboard output.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		zap.L().Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", c.ClientIP()),
		)
	}
}
