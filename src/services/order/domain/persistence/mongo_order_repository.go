package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const OrdersCollection = "orders"

// OrderRepository is the append-only backup of every processed order.
type OrderRepository struct {
	collection *mongo.Collection
}

// OutcomeDocument stores the result of one ledger or notifier call.
type OutcomeDocument struct {
	Success      bool     `bson:"success" json:"success"`
	Message      string   `bson:"message,omitempty" json:"message,omitempty"`
	Error        string   `bson:"error,omitempty" json:"error,omitempty"`
	UpdatedRange string   `bson:"updated_range,omitempty" json:"updated_range,omitempty"`
	UpdatedRows  int64    `bson:"updated_rows,omitempty" json:"updated_rows,omitempty"`
	RowData      []string `bson:"row_data,omitempty" json:"row_data,omitempty"`
}

// OrderDocument is the storage model for MongoDB
type OrderDocument struct {
	ObjectID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID         string             `bson:"order_id" json:"order_id"`
	Timestamp       string             `bson:"timestamp" json:"timestamp"`
	CustomerName    string             `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string             `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string             `bson:"customer_phone" json:"customer_phone"`
	CustomerAddress string             `bson:"customer_address" json:"customer_address"`
	ProductID       int                `bson:"product_id" json:"product_id"`
	ProductName     string             `bson:"product_name" json:"product_name"`
	ProductCategory string             `bson:"product_category" json:"product_category"`
	ProductPrice    string             `bson:"product_price" json:"product_price"`
	SelectedColor   string             `bson:"selected_color" json:"selected_color"`
	SelectedSize    string             `bson:"selected_size" json:"selected_size"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	Notes           string             `bson:"notes" json:"notes"`
	Status          string             `bson:"status" json:"status"`
	SheetsResult    OutcomeDocument    `bson:"sheets_result" json:"sheets_result"`
	TelegramResult  OutcomeDocument    `bson:"telegram_result" json:"telegram_result"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection(OrdersCollection),
	}
}

// InsertOrder appends one record. Records are never updated afterwards.
func (r *OrderRepository) InsertOrder(ctx context.Context, order *OrderDocument) error {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.OrderID, err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ObjectID = id
	}
	return nil
}

// RecentOrders returns up to limit records, newest first.
func (r *OrderRepository) RecentOrders(ctx context.Context, limit int64) ([]OrderDocument, error) {
	opts := options.Find().SetLimit(limit).SetSort(bson.D{bson.E{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := make([]OrderDocument, 0)
	for cursor.Next(ctx) {
		var doc OrderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}
	return orders, nil
}
