package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/versified/bondsapi/internal/middleware"
)

// requestTimeout bounds the total time spent serving one request,
// including all upstream fetches.
const requestTimeout = 30 * time.Second

// NewRouter configures the Gin engine with middleware and routes.
func NewRouter(h *Handler, corsOrigin string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(corsOrigin))
	router.Use(middleware.RateLimiter())
	router.Use(withTimeout(requestTimeout))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", HealthCheck)
		apiGroup.GET("/bonds/search", h.SearchBonds)
		apiGroup.GET("/bonds/volumes", h.BondVolumes)
		apiGroup.GET("/bonds/:valor_id", h.BondDetails)
		apiGroup.GET("/snb/curve", h.Curve)
	}

	return router
}

func withTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
