package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oksasatya/gudimart-store/pkg/response"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id for the response envelope and
// logs. A caller-supplied X-Request-ID is kept when it is a valid UUID so
// ids can be traced across services.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
