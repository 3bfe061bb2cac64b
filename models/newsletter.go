package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Newsletter is a marketing content record. Deletion is soft: IsActive is
// cleared and the record drops out of listings.
type Newsletter struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Media     []string           `json:"media" bson:"media"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedBy primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
