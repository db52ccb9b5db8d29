package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestIDMiddleware tags each request with a unique ID, honoring an
// incoming X-Request-ID from a trusted proxy.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)

		// The logger reads the id back from the request context
		ctx := context.WithValue(c.Request.Context(), "request_id", id) //nolint:staticcheck
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
