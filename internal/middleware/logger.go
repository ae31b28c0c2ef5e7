package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// RequestLogger logs every request with its status and latency
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Start timer
		c.Next()            // Process request
		entry := logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,           // HTTP method
			"path":    c.FullPath(),               // Route pattern
			"status":  c.Writer.Status(),          // Response status
			"latency": time.Since(start).String(), // Request duration
			"client":  c.ClientIP(),               // Caller address
		})
		if c.Writer.Status() >= 500 {
			entry.Error("Request failed") // Server-side failure
			return
		}
		entry.Info("Request handled")
	}
}
