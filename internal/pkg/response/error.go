package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/apperror"
)

// Error writes a JSON error body from err. AppError values carry their own
// HTTP status; anything else becomes a generic 500 without leaking internals.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
