package httpapi

import (
	"io"
	"net/http"
	"time"

	"sip-dialer/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.

// TokenIssuer is the capability Handlers needs from the token package.
type TokenIssuer interface {
	Issue(now time.Time) (string, error)
}

type Handlers struct {
	Issuer TokenIssuer

	// Now is injectable for deterministic tests.
	Now func() time.Time
}

// Token mints a browser access token.
//
// Failures map to a fixed message so key material can never leak through
// error text.
func (h Handlers) Token(c *gin.Context) {
	if h.Issuer == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuer not configured"})
		return
	}
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	tok, err := h.Issuer.Issue(now())
	if err != nil {
		logger.FromGin(c).Error("token issuance failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok})
}

// Health reports liveness. It depends on nothing else.
func (h Handlers) Health(c *gin.Context) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": now().UTC().Format(time.RFC3339),
	})
}

const maxLoggedBody = 4 << 10

// NotFound logs the full request shape and answers 404.
// This is operational visibility during platform integration, not a security
// boundary.
func NotFound(c *gin.Context) {
	log := logger.FromGin(c)

	var body string
	if c.Request.Body != nil {
		b, _ := io.ReadAll(io.LimitReader(c.Request.Body, maxLoggedBody))
		body = string(b)
	}

	log.Warn("unmatched route",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"headers", c.Request.Header,
		"body", body,
	)

	c.JSON(http.StatusNotFound, gin.H{
		"error":  "not found",
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	})
}
