package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yashwardhan0703/ecomerce-backend/models"
)

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	OrderStatus   string
	PaymentStatus string
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByUser(ctx context.Context, user primitive.ObjectID, page, limit int) ([]models.Order, int64, error)
	FindAll(ctx context.Context, filter OrderFilter, page, limit int) ([]models.Order, int64, error)
	Save(ctx context.Context, order *models.Order) error
}

// MongoOrderRepository implements OrderRepository on MongoDB.
type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection("orders")}
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MongoOrderRepository) FindByUser(ctx context.Context, user primitive.ObjectID, page, limit int) ([]models.Order, int64, error) {
	return r.findPaged(ctx, bson.M{"user": user}, page, limit)
}

func (r *MongoOrderRepository) FindAll(ctx context.Context, filter OrderFilter, page, limit int) ([]models.Order, int64, error) {
	query := bson.M{}
	if filter.OrderStatus != "" {
		query["orderStatus"] = filter.OrderStatus
	}
	if filter.PaymentStatus != "" {
		query["paymentStatus"] = filter.PaymentStatus
	}
	return r.findPaged(ctx, query, page, limit)
}

func (r *MongoOrderRepository) Save(ctx context.Context, order *models.Order) error {
	order.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoOrderRepository) findPaged(ctx context.Context, query bson.M, page, limit int) ([]models.Order, int64, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
