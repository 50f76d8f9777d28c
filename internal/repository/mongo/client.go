// Package mongo implements the stateful entity repositories over MongoDB.
// All counter mutations are issued as $inc updates and the sticky
// assignment gate is a unique compound index, so concurrent workers never
// lose updates or double-assign.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/nuribostan/abTestYazilim/internal/config"
)

// Collection names.
const (
	colVisitors        = "visitors"
	colAssignments     = "assignments"
	colConversions     = "conversions"
	colExperiments     = "experiments"
	colVariants        = "variants"
	colGoals           = "goals"
	colExperimentGoals = "experiment_goals"
	colDailyStats      = "daily_stats"
	colLiveLogs        = "live_logs"
)

// Client wraps the MongoDB connection and database handle.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
	log      *zap.Logger
}

// NewClient connects to MongoDB and verifies the connection.
func NewClient(ctx context.Context, cfg *config.Mongo, log *zap.Logger) (*Client, error) {
	log.Info("Connecting to MongoDB", zap.String("database", cfg.Database))

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info("MongoDB connection established successfully")

	return &Client{
		client:   client,
		database: client.Database(cfg.Database),
		log:      log,
	}, nil
}

// Database returns the underlying database handle.
func (c *Client) Database() *mongo.Database {
	return c.database
}

// Ping checks if the MongoDB connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	c.log.Info("Closing MongoDB connection")
	if err := c.client.Disconnect(ctx); err != nil {
		c.log.Error("Error closing MongoDB connection", zap.Error(err))
		return err
	}
	return nil
}

// Repository implements the entity repositories over one Mongo database.
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a Mongo-backed repository.
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// Ping checks the underlying connection.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// InitSchema creates the indexes the pipeline's semantics rely on: the
// identity keys, the assignment uniqueness gate, the daily stat bucket key
// and the live log TTL sweep.
func (r *Repository) InitSchema(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		colVisitors: {{
			Keys:    bson.D{{Key: "projectId", Value: 1}, {Key: "visitorId", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		colAssignments: {{
			Keys:    bson.D{{Key: "visitorId", Value: 1}, {Key: "experimentId", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		colConversions: {{
			Keys: bson.D{{Key: "experimentId", Value: 1}, {Key: "convertedAt", Value: 1}},
		}},
		colExperiments: {{
			Keys:    bson.D{{Key: "experimentId", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		colVariants: {{
			Keys:    bson.D{{Key: "variantId", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		colExperimentGoals: {{
			Keys:    bson.D{{Key: "experimentId", Value: 1}, {Key: "goalId", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		colDailyStats: {{
			Keys:    bson.D{{Key: "experimentId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		colLiveLogs: {{
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		}},
	}

	for collection, models := range indexes {
		if _, err := r.client.Database().Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}

	r.log.Info("MongoDB schema initialized successfully")
	return nil
}

func (r *Repository) collection(name string) *mongo.Collection {
	return r.client.Database().Collection(name)
}
