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

// NewsletterRepository defines the interface for newsletter data access.
type NewsletterRepository interface {
	Create(ctx context.Context, newsletter *models.Newsletter) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Newsletter, error)
	FindActive(ctx context.Context) ([]models.Newsletter, error)
	Save(ctx context.Context, newsletter *models.Newsletter) error
}

// MongoNewsletterRepository implements NewsletterRepository on MongoDB.
type MongoNewsletterRepository struct {
	col *mongo.Collection
}

func NewMongoNewsletterRepository(db *mongo.Database) *MongoNewsletterRepository {
	return &MongoNewsletterRepository{col: db.Collection("newsletters")}
}

func (r *MongoNewsletterRepository) Create(ctx context.Context, newsletter *models.Newsletter) error {
	now := time.Now().UTC()
	newsletter.CreatedAt = now
	newsletter.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, newsletter)
	if err != nil {
		return err
	}
	newsletter.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoNewsletterRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Newsletter, error) {
	var newsletter models.Newsletter
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&newsletter)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &newsletter, nil
}

func (r *MongoNewsletterRepository) FindActive(ctx context.Context) ([]models.Newsletter, error) {
	cursor, err := r.col.Find(ctx, bson.M{"isActive": true},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var newsletters []models.Newsletter
	if err := cursor.All(ctx, &newsletters); err != nil {
		return nil, err
	}
	return newsletters, nil
}

func (r *MongoNewsletterRepository) Save(ctx context.Context, newsletter *models.Newsletter) error {
	newsletter.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": newsletter.ID}, newsletter)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
