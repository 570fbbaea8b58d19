package response

import (
	"github.com/gin-gonic/gin"

	domainerrors "bank-backoffice.backend/internal/domain/errors"
)

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// NoContent sends an empty response with the given status
func NoContent(c *gin.Context, status int) {
	c.Status(status)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	appErr, ok := domainerrors.As(err)
	if !ok {
		// Default to Internal Server Error if not an AppError
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// Abort sends an error response and stops the handler chain
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
