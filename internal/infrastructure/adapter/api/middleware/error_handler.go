package middleware

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	// The mini app shows these as plain input errors
	case errors.Is(err, domainerr.ErrInsufficientBalance),
		errors.Is(err, domainerr.ErrInsufficientTickets):
		return http.StatusBadRequest
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsStateConflictError(err), domainerr.IsUserLockedError(err):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrShuttingDown):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the response body for err. Server errors never
// leak their cause.
func NewErrorResponse(err error) (int, dto.ErrorResponse) {
	status := StatusCode(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
		if errors.Is(err, domainerr.ErrInvoiceUnavailable) {
			message = domainerr.ErrInvoiceUnavailable.Error()
		}
	}
	return status, dto.ErrorResponse{Code: domainerr.ErrorCode(err), Message: message}
}

// ErrorHandler recovers from panics and renders the last error a handler
// attached with c.Error
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      r,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetString(RequestIDKey),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, body := NewErrorResponse(err)
		if status >= http.StatusInternalServerError {
			fields := domainerr.LogFieldsOf(err)
			fields["path"] = c.Request.URL.Path
			fields["request_id"] = c.GetString(RequestIDKey)
			logger.Error("Request failed", fields)
		}
		c.AbortWithStatusJSON(status, body)
	}
}
