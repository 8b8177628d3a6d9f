package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	StatusChecksCollection = "status_checks"
	maxStatusChecks        = 1000
)

type StatusCheckDocument struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

type StatusCheckRepository struct {
	collection *mongo.Collection
}

func NewStatusCheckRepository(db *mongo.Database) *StatusCheckRepository {
	return &StatusCheckRepository{
		collection: db.Collection(StatusChecksCollection),
	}
}

func (r *StatusCheckRepository) Insert(ctx context.Context, check StatusCheckDocument) error {
	if _, err := r.collection.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("failed to insert status check: %w", err)
	}
	return nil
}

func (r *StatusCheckRepository) List(ctx context.Context) ([]StatusCheckDocument, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(maxStatusChecks))
	if err != nil {
		return nil, fmt.Errorf("failed to query status checks: %w", err)
	}
	defer cursor.Close(ctx)

	checks := make([]StatusCheckDocument, 0)
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("failed to decode status checks: %w", err)
	}
	return checks, nil
}
