package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/pkg/logger"
)

const redactedMessage = "An error occurred"

// ErrorHandler turns the last error a handler attached with c.Error into a
// JSON response. With production set, messages of 5xx errors are replaced by
// a generic text; the cause is still logged.
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := apperr.Status(err)
		body := apperr.Payload(err)

		if status >= http.StatusInternalServerError {
			logger.L().Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.String(RequestIDKey, c.GetString(RequestIDKey)),
				zap.Error(err),
			)
			if production {
				body["message"] = redactedMessage
			}
		}
		c.JSON(status, body)
	}
}

// Recovery converts panics into a 500 response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.L().Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String(RequestIDKey, c.GetString(RequestIDKey)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"code": "internal_error", "message": "Something went wrong!"})
	})
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "message": "Route not found"})
}
