package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func orderDoc(id string, createdAt time.Time) bson.D {
	return bson.D{
		{Key: "order_id", Value: id},
		{Key: "timestamp", Value: createdAt.Format("2006-01-02 15:04:05")},
		{Key: "customer_name", Value: "Jane Doe"},
		{Key: "customer_email", Value: "jane@example.com"},
		{Key: "product_id", Value: int32(1)},
		{Key: "quantity", Value: int32(2)},
		{Key: "status", Value: "placed"},
		{Key: "sheets_result", Value: bson.D{{Key: "success", Value: true}, {Key: "updated_rows", Value: int64(1)}}},
		{Key: "telegram_result", Value: bson.D{{Key: "success", Value: false}, {Key: "error", Value: "Telegram API error: 401"}}},
		{Key: "created_at", Value: createdAt},
	}
}

func TestOrderRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert assigns object id and receipt time", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := &OrderRepository{collection: mt.Coll}

		doc := &OrderDocument{OrderID: "o-1", Status: "placed"}
		require.NoError(mt, repo.InsertOrder(context.Background(), doc))

		assert.False(mt, doc.ObjectID.IsZero())
		assert.False(mt, doc.CreatedAt.IsZero())
	})

	mt.Run("insert surfaces write errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		repo := &OrderRepository{collection: mt.Coll}

		err := repo.InsertOrder(context.Background(), &OrderDocument{OrderID: "o-1"})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "o-1")
	})

	mt.Run("recent orders decode every field", func(mt *mtest.T) {
		now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, orderDoc("o-2", now), orderDoc("o-1", now.Add(-time.Minute))),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)
		repo := &OrderRepository{collection: mt.Coll}

		orders, err := repo.RecentOrders(context.Background(), 50)
		require.NoError(mt, err)
		require.Len(mt, orders, 2)

		assert.Equal(mt, "o-2", orders[0].OrderID)
		assert.Equal(mt, "Jane Doe", orders[0].CustomerName)
		assert.Equal(mt, 2, orders[0].Quantity)
		assert.True(mt, orders[0].SheetsResult.Success)
		assert.Equal(mt, int64(1), orders[0].SheetsResult.UpdatedRows)
		assert.Equal(mt, "Telegram API error: 401", orders[0].TelegramResult.Error)
		assert.Equal(mt, "o-1", orders[1].OrderID)
	})

	mt.Run("recent orders on empty collection", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := &OrderRepository{collection: mt.Coll}

		orders, err := repo.RecentOrders(context.Background(), 10)
		require.NoError(mt, err)
		assert.Empty(mt, orders)
		assert.NotNil(mt, orders)
	})
}

func TestStatusCheckRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert and list", func(mt *mtest.T) {
		now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "id", Value: "s-1"},
				{Key: "client_name", Value: "storefront"},
				{Key: "timestamp", Value: now},
			}),
		)
		repo := &StatusCheckRepository{collection: mt.Coll}

		require.NoError(mt, repo.Insert(context.Background(), StatusCheckDocument{ID: "s-1", ClientName: "storefront", Timestamp: now}))

		checks, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, checks, 1)
		assert.Equal(mt, "storefront", checks[0].ClientName)
		assert.True(mt, now.Equal(checks[0].Timestamp))
	})
}
