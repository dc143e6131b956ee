package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mariyaselvam/service-booking-BE/internal/pkg"
)

// Timeout bounds the request context with d so store calls made by handlers
// are canceled once the deadline passes. A handler that lets the deadline pass
// without writing a response gets a 408 envelope. A non-positive d disables it.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusRequestTimeout, pkg.Response{
				Code:    http.StatusRequestTimeout,
				Message: "request timeout",
			})
		}
	}
}
