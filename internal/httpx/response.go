// Package httpx maps domain results and errors onto the HTTP wire format.
package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shareit-app/backend/internal/domain"
)

// ErrorResponse is the error body every failing endpoint returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OK writes a 200 response with the given payload.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// Error translates a domain error into its HTTP status. Not-found covers
// authorization failures too; anything untyped is a 500.
func Error(c *gin.Context, err error) {
	var (
		notFound     *domain.NotFoundError
		notAvailable *domain.NotAvailableError
		stateErr     *domain.StateError
		conflict     *domain.ConflictError
		validation   *domain.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFound.Message})
	case errors.As(err, &notAvailable):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: notAvailable.Message})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: stateErr.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: conflict.Message})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validation.Message})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
