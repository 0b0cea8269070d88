package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"paradise/internal/pkg/response"
)

// AllowedHosts rejects requests whose Host header is not on the list.
// An empty list disables the check (local development).
func AllowedHosts(hosts []string) gin.HandlerFunc {
	if len(hosts) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	allowed := make(map[string]bool, len(hosts))
	for _, h := range hosts {
		allowed[h] = true
	}

	return func(c *gin.Context) {
		host := c.Request.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		if !allowed[host] {
			response.Error(c, http.StatusBadRequest, "Недопустимый хост")
			c.Abort()
			return
		}
		c.Next()
	}
}
