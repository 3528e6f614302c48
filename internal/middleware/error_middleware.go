package middleware

import (
	"fmt"
	"net/http"

	"curling-registry/internal/transport/httpdto"
	"curling-registry/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders errors attached to the context, and recovered panics, as 500.
func ErrorHandler(l *logger.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				respondServerError(c, l, fmt.Errorf("panic: %v", r), production)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		respondServerError(c, l, c.Errors.Last().Err, production)
	}
}

func respondServerError(c *gin.Context, l *logger.Logger, err error, production bool) {
	if l != nil {
		l.ErrorContext(c.Request.Context(), "request error", zap.Error(err))
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, httpdto.NewServerErrorResponse(err, production))
}
