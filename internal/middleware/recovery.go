package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/versified/bondsapi/internal/domain/dto"
	"github.com/versified/bondsapi/internal/logger"
)

// Recovery returns a Gin middleware that recovers from panics raised during
// request handling, logs the stack trace, and returns a standardized JSON
// error response with status 500.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.Recovery())
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				errResponse := dto.NewErrorResponse("Internal server error", fmt.Errorf("%v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, errResponse)
			}
		}()

		c.Next()
	}
}
