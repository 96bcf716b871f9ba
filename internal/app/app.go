package app

import (
	"github.com/gin-gonic/gin"
	"github.com/versified/bondsapi/config"
	"github.com/versified/bondsapi/internal/api"
	"github.com/versified/bondsapi/internal/service"
	"github.com/versified/bondsapi/internal/six"
	"github.com/versified/bondsapi/internal/snb"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the SIX and SNB upstream clients with their cache TTLs.
//   - Initializes the service layer (spread enrichment, volume aggregation).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Provides a cleanup function to close resources (idle upstream
//     connections).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream clients with their in-memory caches
	sixClient := six.NewClient(cfg.Six, cfg.Cache.SearchTTL, cfg.Cache.DetailTTL)
	snbClient := snb.NewClient(cfg.SNB, cfg.Cache.CurveTTL)

	// Initialize service layer (business logic)
	svc := service.NewBondService(sixClient, snbClient, cfg.Cache.VolumeTTL)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.Server.CORSOrigin)

	// Cleanup resources on shutdown
	cleanup := func() {
		sixClient.CloseIdleConnections()
		snbClient.CloseIdleConnections()
	}

	return router, cleanup, nil
}
