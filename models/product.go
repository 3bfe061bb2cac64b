package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sizes a variation may carry.
var ValidSizes = []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"}

// IsValidSize reports whether s is one of the enumerated sizes.
func IsValidSize(s string) bool {
	for _, v := range ValidSizes {
		if v == s {
			return true
		}
	}
	return false
}

// Variation is a purchasable size/price/stock combination embedded in a
// product. Sizes are unique within a product's variation list.
type Variation struct {
	Size  string  `json:"size" bson:"size" binding:"required,oneof=XS S M L XL XXL XXXL"`
	Price float64 `json:"price" bson:"price" binding:"min=0"`
	Stock int     `json:"stock" bson:"stock" binding:"min=0"`
}

// Product is a catalog item with embedded variations. Order items copy from
// it at checkout time; stock on the variation is the single source of truth
// for availability.
type Product struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	Subcategory   primitive.ObjectID `json:"subcategory" bson:"subcategory"`
	Images        []string           `json:"images" bson:"images"`
	Banner        string             `json:"banner,omitempty" bson:"banner,omitempty"`
	Brand         string             `json:"brand" bson:"brand"`
	Variations    []Variation        `json:"variations" bson:"variations"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	IsSpecialDeal bool               `json:"isSpecialDeal" bson:"isSpecialDeal"`
	DealDiscount  float64            `json:"dealDiscount" bson:"dealDiscount"`
	DealStartDate *time.Time         `json:"dealStartDate,omitempty" bson:"dealStartDate,omitempty"`
	DealEndDate   *time.Time         `json:"dealEndDate,omitempty" bson:"dealEndDate,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Variation returns the variation matching size, or nil when the size is not
// offered.
func (p *Product) Variation(size string) *Variation {
	for i := range p.Variations {
		if p.Variations[i].Size == size {
			return &p.Variations[i]
		}
	}
	return nil
}

// SpecialDealRequest is the payload for creating or clearing a time-boxed
// discount on a product.
type SpecialDealRequest struct {
	IsSpecialDeal bool    `json:"isSpecialDeal"`
	DealDiscount  float64 `json:"dealDiscount"`
	DealStartDate string  `json:"dealStartDate"`
	DealEndDate   string  `json:"dealEndDate"`
}
