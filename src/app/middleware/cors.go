package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS adds permissive CORS headers so the API can be called from any
// origin, and answers OPTIONS preflight requests directly.
func CORS() gin.HandlerFunc {
	const (
		allowedOrigin  = "*"
		allowedMethods = "GET, POST, OPTIONS"
		allowedHeaders = "Content-Type, " + RequestIDHeader
		exposedHeaders = RequestIDHeader
		maxAge         = "600"
	)

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", allowedMethods)
		c.Header("Access-Control-Allow-Headers", allowedHeaders)
		c.Header("Access-Control-Expose-Headers", exposedHeaders)
		c.Header("Access-Control-Max-Age", maxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
