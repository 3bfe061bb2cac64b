package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yashwardhan0703/ecomerce-backend/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindActive(ctx context.Context) ([]models.Category, error)
	Save(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SubcategoryRepository defines the interface for subcategory data access.
type SubcategoryRepository interface {
	Create(ctx context.Context, sub *models.Subcategory) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Subcategory, error)
	FindByNameAndCategory(ctx context.Context, name string, category primitive.ObjectID) (*models.Subcategory, error)
	FindActive(ctx context.Context) ([]models.Subcategory, error)
	FindByCategory(ctx context.Context, category primitive.ObjectID) ([]models.Subcategory, error)
	CountByCategory(ctx context.Context, category primitive.ObjectID) (int64, error)
	Save(ctx context.Context, sub *models.Subcategory) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoCategoryRepository implements CategoryRepository on MongoDB.
type MongoCategoryRepository struct {
	col *mongo.Collection
}

func NewMongoCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{col: db.Collection("categories")}
}

func (r *MongoCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, category)
	if err != nil {
		return err
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByName matches case-insensitively on the exact name.
func (r *MongoCategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	filter := bson.M{"name": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(name) + "$",
		"$options": "i",
	}}

	var category models.Category
	err := r.col.FindOne(ctx, filter).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *MongoCategoryRepository) FindActive(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.col.Find(ctx, bson.M{"isActive": true},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCategoryRepository) Save(ctx context.Context, category *models.Category) error {
	category.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoSubcategoryRepository implements SubcategoryRepository on MongoDB.
type MongoSubcategoryRepository struct {
	col *mongo.Collection
}

func NewMongoSubcategoryRepository(db *mongo.Database) *MongoSubcategoryRepository {
	return &MongoSubcategoryRepository{col: db.Collection("subcategories")}
}

func (r *MongoSubcategoryRepository) Create(ctx context.Context, sub *models.Subcategory) error {
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, sub)
	if err != nil {
		return err
	}
	sub.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoSubcategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Subcategory, error) {
	var sub models.Subcategory
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *MongoSubcategoryRepository) FindByNameAndCategory(ctx context.Context, name string, category primitive.ObjectID) (*models.Subcategory, error) {
	var sub models.Subcategory
	err := r.col.FindOne(ctx, bson.M{"name": name, "category": category}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *MongoSubcategoryRepository) FindActive(ctx context.Context) ([]models.Subcategory, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *MongoSubcategoryRepository) FindByCategory(ctx context.Context, category primitive.ObjectID) ([]models.Subcategory, error) {
	return r.find(ctx, bson.M{"category": category, "isActive": true})
}

func (r *MongoSubcategoryRepository) CountByCategory(ctx context.Context, category primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"category": category})
}

func (r *MongoSubcategoryRepository) Save(ctx context.Context, sub *models.Subcategory) error {
	sub.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": sub.ID}, sub)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoSubcategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoSubcategoryRepository) find(ctx context.Context, filter bson.M) ([]models.Subcategory, error) {
	cursor, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.Subcategory
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
