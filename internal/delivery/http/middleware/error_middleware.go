package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/apperror"

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
				var details interface{}
				if len(appErr.Fields) > 0 {
					details = appErr.Fields
				}
				if appErr.Err != nil {
					slog.Error("request failed", "code", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, details)
				return
			}

			// Repository errors that escape the usecases still map cleanly.
			if errors.Is(err, domain.ErrNotFound) {
				response.Error(c, http.StatusNotFound, "Not found", nil)
				return
			}

			// Never expose internal error details to clients. Log the actual
			// error server-side and send a generic message.
			slog.Error("unhandled error", "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
