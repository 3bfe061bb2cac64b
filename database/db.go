package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	MongoClient *mongo.Client
	DB          *mongo.Database
)

// Connect connects to MongoDB using the provided URI and database name.
func Connect(mongoURI, dbName string) error {
	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)

	client, err := mongo.Connect(timeoutCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(timeoutCtx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	DB = client.Database(dbName)
	return nil
}

// EnsureIndexes creates the unique indexes the data model relies on:
// one account per email, one cart and one wishlist per user.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	if _, err := DB.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	if _, err := DB.Collection("carts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("carts user index: %w", err)
	}

	if _, err := DB.Collection("wishlists").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("wishlists user index: %w", err)
	}

	if _, err := DB.Collection("subcategories").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}},
	}); err != nil {
		return fmt.Errorf("subcategories category+name index: %w", err)
	}

	return nil
}

// Close disconnects from MongoDB.
func Close() error {
	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := MongoClient.Disconnect(disconnectCtx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
