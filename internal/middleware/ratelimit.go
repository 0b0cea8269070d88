package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"paradise/internal/pkg/ratelimit"
	"paradise/internal/pkg/response"
)

// RateLimit rejects with 429 before any other processing once the caller's IP
// exhausts its window. The policy response is fixed; it is not a validation error.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			log.Printf("rate_limit_exceeded client_ip=%s path=%s", ip, c.Request.URL.Path)
			response.Error(c, http.StatusTooManyRequests, "Слишком много запросов. Попробуйте позже.")
			c.Abort()
			return
		}
		c.Next()
	}
}
