package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voice-notes/internal/api/errors"
)

// ErrorHandler middleware handles errors consistently across the API
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("Internal server error",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = errors.FromDomain(err)
		default:
			logger.Error("Unknown panic occurred",
				zap.Any("recovered", recovered),
				zap.String("request_id", requestID),
			)
			apiErr = errors.NewInternalError("Internal server error")
		}

		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes err as an APIError response, mapping domain errors.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := errors.FromDomain(err)
	if apiErr.Kind == errors.KindInternal || apiErr.Kind == errors.KindServiceUnavailable {
		_ = c.Error(err)
	}
	resp := *apiErr
	resp.RequestID = GetRequestID(c)
	c.AbortWithStatusJSON(resp.HTTPStatus(), &resp)
}
