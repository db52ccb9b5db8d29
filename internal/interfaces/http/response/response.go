package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "venture-link.backend/internal/domain/errors"
)

// Envelope is the wire shape of every response body
type Envelope struct {
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
	Status int         `json:"status"`
}

// Success sends a success response wrapped in the envelope
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Data: data, Status: status})
}

// Error sends an error response. AppErrors carry their own status; anything
// else becomes a 500 without leaking the internal message.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, Envelope{Error: appErr.Message, Status: appErr.Status})
}
