package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/belenfg/restaurant-chatbot/pkg/response"
)

// Recovery turns a handler panic into a 500 envelope and logs the stack.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				ctx := c.Request.Context()
				m.l.Errorf(ctx, "panic recovered: %v\n%s", r, debug.Stack())
				response.InternalError(c, fmt.Errorf("%v", r))
				c.Abort()
			}
		}()
		c.Next()
	}
}
