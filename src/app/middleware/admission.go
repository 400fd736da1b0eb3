package middleware

import (
	"github.com/gin-gonic/gin"

	"faqhub/src/app/http/response"
	"faqhub/src/infra/resilience"
)

// Admission gates a route behind a bulkhead. A request over capacity is
// rejected with 429 before the handler runs; an admitted request holds its
// slot until the handler returns.
func Admission(b *resilience.Bulkhead) gin.HandlerFunc {
	return func(c *gin.Context) {
		release, err := b.Acquire(c.Request.Context())
		if err != nil {
			c.Error(err)
			response.FromDomainError(c, err)
			c.Abort()
			return
		}
		defer release()

		c.Next()
	}
}
