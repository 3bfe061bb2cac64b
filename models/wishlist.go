package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistEntry is one saved product reference.
type WishlistEntry struct {
	Product primitive.ObjectID `json:"product" bson:"product"`
	AddedAt time.Time          `json:"addedAt" bson:"addedAt"`
}

// Wishlist holds one user's saved products, without duplicates.
type Wishlist struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Products  []WishlistEntry    `json:"products" bson:"products"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AddToWishlistRequest is the payload for saving a product.
type AddToWishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
