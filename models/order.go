package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Payment statuses
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// OrderItem is a point-in-time copy of a cart line taken at checkout. Later
// product or price changes never retroactively alter it.
type OrderItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Size     string             `json:"size" bson:"size"`
	Quantity int                `json:"quantity" bson:"quantity"`
	Price    float64            `json:"price" bson:"price"`
	Total    float64            `json:"total" bson:"total"`
}

// ShippingAddress is the destination captured on the order.
type ShippingAddress struct {
	Street     string `json:"street" bson:"street" binding:"required"`
	City       string `json:"city" bson:"city" binding:"required"`
	State      string `json:"state" bson:"state" binding:"required"`
	PostalCode string `json:"postalCode" bson:"postalCode" binding:"required"`
	Country    string `json:"country" bson:"country" binding:"required"`
}

// Order is an immutable record of a checkout.
type Order struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User              primitive.ObjectID `json:"user" bson:"user"`
	Items             []OrderItem        `json:"items" bson:"items"`
	ShippingAddress   ShippingAddress    `json:"shippingAddress" bson:"shippingAddress"`
	PaymentMethod     string             `json:"paymentMethod" bson:"paymentMethod"`
	Subtotal          float64            `json:"subtotal" bson:"subtotal"`
	ShippingCost      float64            `json:"shippingCost" bson:"shippingCost"`
	TaxAmount         float64            `json:"taxAmount" bson:"taxAmount"`
	TotalAmount       float64            `json:"totalAmount" bson:"totalAmount"`
	OrderStatus       string             `json:"orderStatus" bson:"orderStatus"`
	PaymentStatus     string             `json:"paymentStatus" bson:"paymentStatus"`
	TrackingNumber    string             `json:"trackingNumber,omitempty" bson:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time         `json:"estimatedDelivery,omitempty" bson:"estimatedDelivery,omitempty"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateOrderRequest is the checkout payload. Items come from the user's
// cart, never from the request.
type CreateOrderRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress" binding:"required"`
	PaymentMethod   string          `json:"paymentMethod" binding:"required,oneof=card cod paypal"`
}

// UpdateOrderStatusRequest is the admin payload for fulfillment updates.
type UpdateOrderStatusRequest struct {
	OrderStatus       string `json:"orderStatus" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
	PaymentStatus     string `json:"paymentStatus" binding:"omitempty,oneof=pending paid failed refunded"`
	TrackingNumber    string `json:"trackingNumber"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}
