package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"faqhub/src/app/http/response"
	"faqhub/src/core/domain"
)

// circuitRunner is what the breaker middleware needs from a breaker.
type circuitRunner interface {
	Do(fn func() error) error
}

// CircuitBreaker runs the route through a failure-rate breaker. Responses
// with a 5xx status count as failures; while the breaker is open the request
// is rejected with 429 without reaching the handler.
func CircuitBreaker(b circuitRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := b.Do(func() error {
			c.Next()
			if c.Writer.Status() >= http.StatusInternalServerError {
				return domain.NewStorageFaultError("downstream failure")
			}
			return nil
		})
		if err != nil && !c.Writer.Written() {
			c.Error(err)
			response.FromDomainError(c, err)
			c.Abort()
		}
	}
}
