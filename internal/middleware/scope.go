package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-scheduler/internal/model"
	"voice-scheduler/pkg/log"
	"voice-scheduler/pkg/response"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUsername  = "X-Username"
	HeaderRequestID = "X-Request-ID"

	scopeKey = "scope"
)

// RequestID tags the request context with the incoming X-Request-ID or a fresh UUID,
// and echoes it back in the response.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Scope reads the caller identity placed in X-User-ID by the authenticating proxy.
// Requests without it are rejected; tokens are not verified here.
func (mw Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:   strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Username: strings.TrimSpace(c.GetHeader(HeaderUsername)),
		}
		if !sc.Valid() {
			mw.l.Warnf(c.Request.Context(), "middleware.Scope: missing %s header", HeaderUserID)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(log.WithUserID(c.Request.Context(), sc.UserID))
		c.Next()
	}
}

// GetScope returns the scope stored by Scope, or the zero Scope.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
