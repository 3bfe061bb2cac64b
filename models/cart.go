package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line in a cart, keyed by the (product, size) composite.
// Price is a snapshot taken when the line was added or last merged.
type CartItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Size     string             `json:"size" bson:"size"`
	Quantity int                `json:"quantity" bson:"quantity"`
	Price    float64            `json:"price" bson:"price"`
	AddedAt  time.Time          `json:"addedAt" bson:"addedAt"`
}

// Cart holds one user's pending items. TotalAmount is derived from the items
// on every persist and never trusted from a client.
type Cart struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	Items       []CartItem         `json:"items" bson:"items"`
	TotalAmount float64            `json:"totalAmount" bson:"totalAmount"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// RecalculateTotal recomputes TotalAmount as Σ(price × quantity).
func (c *Cart) RecalculateTotal() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.TotalAmount = total
}

// AddToCartRequest is the payload for adding a line to the cart.
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required,oneof=XS S M L XL XXL XXXL"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartRequest is the payload for changing a line's quantity. A quantity
// of zero or less removes the line.
type UpdateCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required,oneof=XS S M L XL XXL XXXL"`
	Quantity  int    `json:"quantity"`
}
