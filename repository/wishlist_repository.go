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

// WishlistRepository defines the interface for wishlist data access. One
// wishlist per user, enforced by a unique index.
type WishlistRepository interface {
	FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Wishlist, error)
	Save(ctx context.Context, wishlist *models.Wishlist) error
}

// MongoWishlistRepository implements WishlistRepository on MongoDB.
type MongoWishlistRepository struct {
	col *mongo.Collection
}

func NewMongoWishlistRepository(db *mongo.Database) *MongoWishlistRepository {
	return &MongoWishlistRepository{col: db.Collection("wishlists")}
}

func (r *MongoWishlistRepository) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.col.FindOne(ctx, bson.M{"user": user}).Decode(&wishlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (r *MongoWishlistRepository) Save(ctx context.Context, wishlist *models.Wishlist) error {
	now := time.Now().UTC()
	if wishlist.CreatedAt.IsZero() {
		wishlist.CreatedAt = now
	}
	wishlist.UpdatedAt = now

	if wishlist.Products == nil {
		wishlist.Products = []models.WishlistEntry{}
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"user": wishlist.User},
		bson.M{"$set": bson.M{
			"products":  wishlist.Products,
			"updatedAt": wishlist.UpdatedAt,
		}, "$setOnInsert": bson.M{
			"user":      wishlist.User,
			"createdAt": wishlist.CreatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}
	if res.UpsertedID != nil {
		wishlist.ID = res.UpsertedID.(primitive.ObjectID)
	}
	return nil
}
