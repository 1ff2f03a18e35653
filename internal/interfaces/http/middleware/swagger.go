package middleware

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shoplytics/backend/internal/infrastructure/config"
	"github.com/shoplytics/backend/internal/interfaces/http/dto"
)

const swaggerCSP = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"

// SwaggerProtection guards the API documentation routes.
//
//   - Disabled: every request gets 404
//   - AllowedIPs set: clients outside the listed IPs or CIDRs get 403
//
// Allowed requests get a content security policy that lets Swagger UI load its assets.
func SwaggerProtection(cfg config.SwaggerConfig) gin.HandlerFunc {
	prefixes := parseAllowedIPs(cfg.AllowedIPs)

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.MessageResponse{
				Status:  dto.StatusError,
				Message: "API documentation is not available",
			})
			return
		}

		if len(prefixes) > 0 && !isIPAllowed(c.ClientIP(), prefixes) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.MessageResponse{
				Status:  dto.StatusError,
				Message: "Access to API documentation is restricted",
			})
			return
		}

		c.Writer.Header().Set("Content-Security-Policy", swaggerCSP)
		c.Next()
	}
}

// parseAllowedIPs turns IPs and CIDRs into prefixes, skipping invalid entries
func parseAllowedIPs(entries []string) []netip.Prefix {
	var prefixes []netip.Prefix
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			if p, err := netip.ParsePrefix(entry); err == nil {
				prefixes = append(prefixes, p.Masked())
			}
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
		}
	}
	return prefixes
}

func isIPAllowed(clientIP string, prefixes []netip.Prefix) bool {
	addr, err := netip.ParseAddr(clientIP)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
