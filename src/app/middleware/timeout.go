package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"faqhub/src/app/http/response"
	"faqhub/src/core/domain"
)

// Timeout caps the total time a request may spend downstream. The deadline
// travels through c.Request.Context(), so repository calls observe it; if the
// handler has not written a response when the deadline passes, the request
// fails with the taxonomy timeout.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			err := domain.NewTimeoutError()
			c.Error(err)
			response.FromDomainError(c, err)
			c.Abort()
		}
	}
}
