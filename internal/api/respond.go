package api

import (
	"github.com/gin-gonic/gin"

	apperrors "phoenix-assistant/backend/pkg/errors"
	"phoenix-assistant/backend/pkg/logger"
)

// respondError writes the standard error envelope for an AppError and
// aborts the request.
func respondError(c *gin.Context, appErr *apperrors.AppError) {
	logger.FromContext(c).Warn("request failed",
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"error_code", appErr.Code,
		"message", appErr.Message,
	)

	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"details": appErr.Details,
		},
	})
}
