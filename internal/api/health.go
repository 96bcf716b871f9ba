package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /api/health requests.
//
// HealthCheck godoc
// @Summary      Health check
// @Description  Returns service liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string  "Success"
// @Router       /api/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
