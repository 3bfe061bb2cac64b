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

// ProductFilter narrows product listings.
type ProductFilter struct {
	Subcategory *primitive.ObjectID
	MinPrice    *float64
	MaxPrice    *float64
	Size        string
}

// ProductRepository defines the interface for product data access. Stock
// mutations are conditional single-document updates so that two contending
// checkouts can never both pass the availability check.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Find(ctx context.Context, filter ProductFilter, page, limit int) ([]models.Product, int64, error)
	FindBySubcategory(ctx context.Context, subcategory primitive.ObjectID) ([]models.Product, error)
	FindDeals(ctx context.Context, now time.Time, page, limit int) ([]models.Product, int64, error)
	FindBanners(ctx context.Context, page, limit int) ([]models.Product, int64, error)
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DecrementStock(ctx context.Context, id primitive.ObjectID, size string, quantity int) error
	IncrementStock(ctx context.Context, id primitive.ObjectID, size string, quantity int) error
}

// MongoProductRepository implements ProductRepository on MongoDB.
type MongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{col: db.Collection("products")}
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MongoProductRepository) Find(ctx context.Context, filter ProductFilter, page, limit int) ([]models.Product, int64, error) {
	query := bson.M{"isActive": true}

	if filter.Subcategory != nil {
		query["subcategory"] = *filter.Subcategory
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["variations.price"] = price
	}
	if filter.Size != "" {
		query["variations.size"] = filter.Size
	}

	return r.findPaged(ctx, query, page, limit, bson.D{{Key: "createdAt", Value: -1}})
}

func (r *MongoProductRepository) FindBySubcategory(ctx context.Context, subcategory primitive.ObjectID) ([]models.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{"subcategory": subcategory, "isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindDeals returns active products whose deal window covers now, best
// discount first.
func (r *MongoProductRepository) FindDeals(ctx context.Context, now time.Time, page, limit int) ([]models.Product, int64, error) {
	query := bson.M{
		"isSpecialDeal": true,
		"isActive":      true,
		"dealStartDate": bson.M{"$lte": now},
		"dealEndDate":   bson.M{"$gte": now},
	}
	return r.findPaged(ctx, query, page, limit, bson.D{{Key: "dealDiscount", Value: -1}})
}

func (r *MongoProductRepository) FindBanners(ctx context.Context, page, limit int) ([]models.Product, int64, error) {
	query := bson.M{"banner": bson.M{"$nin": bson.A{nil, ""}}}
	return r.findPaged(ctx, query, page, limit, bson.D{{Key: "createdAt", Value: -1}})
}

func (r *MongoProductRepository) Save(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementStock subtracts quantity from the variation's stock only if the
// variation still holds at least that much. The guard and the decrement are
// one document update, so concurrent checkouts serialize on the store.
func (r *MongoProductRepository) DecrementStock(ctx context.Context, id primitive.ObjectID, size string, quantity int) error {
	filter := bson.M{
		"_id": id,
		"variations": bson.M{"$elemMatch": bson.M{
			"size":  size,
			"stock": bson.M{"$gte": quantity},
		}},
	}
	update := bson.M{
		"$inc": bson.M{"variations.$.stock": -quantity},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// IncrementStock returns quantity to the variation's stock. ErrNotFound means
// the product or the size no longer exists; callers restoring stock treat
// that as a skip.
func (r *MongoProductRepository) IncrementStock(ctx context.Context, id primitive.ObjectID, size string, quantity int) error {
	filter := bson.M{
		"_id":        id,
		"variations": bson.M{"$elemMatch": bson.M{"size": size}},
	}
	update := bson.M{
		"$inc": bson.M{"variations.$.stock": quantity},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProductRepository) findPaged(ctx context.Context, query bson.M, page, limit int, sort bson.D) ([]models.Product, int64, error) {
	findOptions := options.Find().
		SetSort(sort).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
