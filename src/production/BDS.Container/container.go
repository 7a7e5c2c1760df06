package container

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/faryal1907/bio-d-scan/src/production/BDS.Config"
	database "github.com/faryal1907/bio-d-scan/src/production/BDS.Database"
	logger "github.com/faryal1907/bio-d-scan/src/production/BDS.Logger"
)

// Container manages dependencies and their lifecycle
type Container struct {
	config *config.Config
	logger *logger.Logger

	mu     sync.RWMutex
	client *mongo.Client

	cleanupFuncs []func(context.Context) error
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.NewLogger(&cfg.Logging)

	return &Container{
		config: cfg,
		logger: log,
	}, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.logger
}

// InitializeDatabase opens the Mongo client and verifies connectivity.
// A failed ping is returned but does not tear the client down: the store
// may become reachable later, and the synthetic data endpoint works
// without it.
func (c *Container) InitializeDatabase(ctx context.Context) error {
	client, err := database.Connect(ctx, &c.config.Database)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.client = client
	c.cleanupFuncs = append(c.cleanupFuncs, func(ctx context.Context) error {
		return database.Disconnect(ctx, client)
	})
	c.mu.Unlock()

	pingCtx, cancel := context.WithTimeout(ctx, c.config.Database.Timeout)
	defer cancel()
	return database.Ping(pingCtx, client)
}

// GetClient returns the shared Mongo client
func (c *Container) GetClient() *mongo.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.client
}

// GetCollection returns the bee data collection handle
func (c *Container) GetCollection() (*mongo.Collection, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.client == nil {
		return nil, fmt.Errorf("database not initialized")
	}
	return database.Collection(c.client, &c.config.Database), nil
}

// Shutdown runs all registered cleanup functions
func (c *Container) Shutdown(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for i := len(c.cleanupFuncs) - 1; i >= 0; i-- {
		if err := c.cleanupFuncs[i](ctx); err != nil {
			c.logger.ErrorWithError(err, "cleanup failed")
		}
	}
	c.cleanupFuncs = nil
}
