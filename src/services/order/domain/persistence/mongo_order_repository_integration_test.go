package persistence

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Integration test that requires a real MongoDB connection.
// Skipped in short mode and when no server answers.
func TestOrderRepository_RecentOrders_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	mongoURL := os.Getenv("MONGODB_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		t.Skipf("Cannot connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("Cannot reach MongoDB: %v", err)
	}

	db := client.Database("test_order_relay")
	defer db.Drop(context.Background())
	repo := NewOrderRepository(db)

	base := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		doc := &OrderDocument{OrderID: id, Status: "placed", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.InsertOrder(ctx, doc); err != nil {
			t.Fatalf("Failed to insert order %s: %v", id, err)
		}
	}

	orders, err := repo.RecentOrders(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to read recent orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("Expected 2 orders, got %d", len(orders))
	}
	if orders[0].OrderID != "third" || orders[1].OrderID != "second" {
		t.Errorf("Expected newest first, got %s, %s", orders[0].OrderID, orders[1].OrderID)
	}
}
