package middleware

import (
	"errors"
	"net/http"

	"profilecard-backend/internal/delivery/http/response"
	"profilecard-backend/pkg/apperror"
	"profilecard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Fields != nil {
					// Validation failures carry the field-path -> message map
					response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
					return
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}
			// Never expose internal error details to clients. Log server-side,
			// send a generic message to the user.
			if logger.Log != nil {
				logger.Log.Error("Internal server error", "error", err, "path", c.FullPath())
			}
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
