// Package response defines the uniform API envelope. Every response, success
// or failure, is {data, message}; failures carry a null data field and the
// human-readable text of the domain error.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"faqhub/src/core/domain"
)

// Envelope is the wrapper for all API responses.
type Envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// OK sends a 200 response with data and the success message.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Data: data, Message: "success"})
}

// OKNoData sends a 200 response for operations without a payload (deletes,
// role transitions).
func OKNoData(c *gin.Context) {
	c.JSON(http.StatusOK, Envelope{Data: nil, Message: "success"})
}

// BadRequest sends a 400 failure envelope.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Data: nil, Message: message})
}

// Overloaded sends a 429 failure envelope.
func Overloaded(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, Envelope{Data: nil, Message: message})
}

// StatusOf is the total mapping from taxonomy kind to transport status.
func StatusOf(err error) int {
	switch {
	case domain.IsInvalidInput(err):
		return http.StatusBadRequest
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsAlreadyExists(err):
		return http.StatusConflict
	case domain.IsTimeout(err):
		return http.StatusRequestTimeout
	case domain.IsOverloaded(err):
		return http.StatusTooManyRequests
	case domain.IsStorageUnavailable(err):
		return http.StatusServiceUnavailable
	case domain.IsStorageFault(err):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// FromDomainError converts a domain error into the failure envelope with the
// status its kind maps to.
func FromDomainError(c *gin.Context, err error) {
	c.JSON(StatusOf(err), Envelope{Data: nil, Message: err.Error()})
}
