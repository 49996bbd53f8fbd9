package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

const slowRequestThreshold = 2 * time.Second

// RequestLogger logs a line per request and flags slow ones.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		if latency > slowRequestThreshold {
			log.Printf("⚠️  SLOW %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
			return
		}
		log.Printf("%s %s %s -> %d (%s)", c.ClientIP(), c.Request.Method, c.Request.URL.Path, status, latency)
	}
}
