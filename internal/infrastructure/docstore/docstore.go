package docstore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"reel-server/reel-api/internal/config"
)

// Client wraps the mongo client together with the configured database handle.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

// Connect establishes the MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Client, error) {
	logger := log.With().Str("component", "docstore").Logger()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Info().Str("database", cfg.MongoDatabase).Msg("connected to mongodb")

	return &Client{
		client: client,
		db:     client.Database(cfg.MongoDatabase),
		log:    logger,
	}, nil
}

// Database returns the configured database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Close releases the underlying mongo client.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
