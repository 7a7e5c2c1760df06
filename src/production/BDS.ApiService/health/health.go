package health

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	database "github.com/faryal1907/bio-d-scan/src/production/BDS.Database"
)

// HealthChecker provides health check functionality over the store client.
type HealthChecker struct {
	client *mongo.Client
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(client *mongo.Client) *HealthChecker {
	return &HealthChecker{client: client}
}

// PingMongo checks if the MongoDB connection is healthy
func (h *HealthChecker) PingMongo(ctx context.Context) error {
	return database.Ping(ctx, h.client)
}

// GetHealthStatus returns the current health status
func (h *HealthChecker) GetHealthStatus(ctx context.Context) map[string]interface{} {
	checks := make(map[string]interface{})

	dbStatus := "ok"
	if err := h.PingMongo(ctx); err != nil {
		dbStatus = "error"
		checks["mongodb"] = map[string]interface{}{
			"status": dbStatus,
			"error":  err.Error(),
		}
	} else {
		checks["mongodb"] = map[string]interface{}{
			"status": dbStatus,
		}
	}

	overallStatus := "ok"
	if dbStatus != "ok" {
		overallStatus = "degraded"
	}

	return map[string]interface{}{
		"status":    overallStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	}
}
