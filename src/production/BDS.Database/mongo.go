package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	config "github.com/faryal1907/bio-d-scan/src/production/BDS.Config"
)

// Connect opens a MongoDB client for the configured URI. The driver dials
// lazily, so a connect error here means the URI itself is malformed; use
// Ping to find out whether the store is actually reachable.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to MongoDB: %w", err)
	}
	return client, nil
}

// Ping verifies the store is reachable via a primary read preference check.
func Ping(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return fmt.Errorf("mongo client is nil")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("unable to ping MongoDB: %w", err)
	}
	return nil
}

// Collection returns the bee data collection handle. The handle is safe for
// concurrent use across request goroutines.
func Collection(client *mongo.Client, cfg *config.DatabaseConfig) *mongo.Collection {
	return client.Database(cfg.Database).Collection(cfg.Collection)
}

// Disconnect closes the client and its connection pool.
func Disconnect(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
