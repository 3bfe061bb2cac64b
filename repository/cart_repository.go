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

// CartRepository defines the interface for cart data access. There is exactly
// one cart per user, enforced by a unique index.
type CartRepository interface {
	FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
}

// MongoCartRepository implements CartRepository on MongoDB.
type MongoCartRepository struct {
	col *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{col: db.Collection("carts")}
}

func (r *MongoCartRepository) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.col.FindOne(ctx, bson.M{"user": user}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save upserts the user's cart. The derived total is recomputed here so no
// persisted cart ever carries a stale or client-supplied total.
func (r *MongoCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	cart.RecalculateTotal()

	now := time.Now().UTC()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now

	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"user": cart.User},
		bson.M{"$set": bson.M{
			"items":       cart.Items,
			"totalAmount": cart.TotalAmount,
			"updatedAt":   cart.UpdatedAt,
		}, "$setOnInsert": bson.M{
			"user":      cart.User,
			"createdAt": cart.CreatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}
	if res.UpsertedID != nil {
		cart.ID = res.UpsertedID.(primitive.ObjectID)
	}
	return nil
}
