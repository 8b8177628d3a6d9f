package mongo

import (
	"context"
	"fmt"
	"go-order-relay/src/config"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

var (
	clientInstance *mongo.Client
	clientErr      error
	clientOnce     sync.Once
)

// GetMongoClient connects once per process and verifies the deployment is reachable.
func GetMongoClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	clientOnce.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoDBConnectionString))
		if err != nil {
			clientErr = fmt.Errorf("failed to connect to MongoDB: %w", err)
			return
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			clientErr = fmt.Errorf("MongoDB ping failed: %w", err)
			return
		}
		clientInstance = client
	})
	return clientInstance, clientErr
}

func GetDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.MongoDBDatabaseName)
}
