package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faryal1907/bio-d-scan/src/production/BDS.ApiService/health"
	logger "github.com/faryal1907/bio-d-scan/src/production/BDS.Logger"
)

// HealthController handles liveness and readiness requests
type HealthController struct {
	checker *health.HealthChecker
	logger  *logger.Logger
}

// NewHealthController creates a new health controller
func NewHealthController(checker *health.HealthChecker, logger *logger.Logger) *HealthController {
	return &HealthController{
		checker: checker,
		logger:  logger,
	}
}

// RegisterRoutes registers the health routes with Gin
func (c *HealthController) RegisterRoutes(router *gin.Engine) {
	router.GET("/", c.Root)
	router.GET("/health", c.HealthLive)
	router.GET("/health/ready", c.HealthReady)
}

func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Bio D Scan API is running!"})
}

func (c *HealthController) HealthLive(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (c *HealthController) HealthReady(ctx *gin.Context) {
	status := c.checker.GetHealthStatus(ctx)
	code := http.StatusOK
	if status["status"] != "ok" {
		code = http.StatusServiceUnavailable
	}
	ctx.JSON(code, status)
}
