package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/candlepulse/internal/domain/dto"
)

// ErrorHandler turns errors attached with c.Error into a 500 response when
// the handler did not write one itself.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.NewErrorResponse("Internal server error", c.Errors.Last().Err))
}

// AbortWithError records err on the context (for the request log) and
// writes status with a standard ErrorResponse body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
