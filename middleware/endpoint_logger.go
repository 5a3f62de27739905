package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// EndpointCallLogger logs each HTTP request after the handler chain ran.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		log.Printf("%s %s -> %d (%dms)", c.Request.Method, c.Request.URL.Path, status, duration.Milliseconds())
	}
}
