package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRecalculateTotal(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{Product: primitive.NewObjectID(), Size: "M", Quantity: 2, Price: 25},
			{Product: primitive.NewObjectID(), Size: "L", Quantity: 1, Price: 40.5},
		},
	}

	cart.RecalculateTotal()
	assert.Equal(t, 90.5, cart.TotalAmount)

	cart.Items = nil
	cart.RecalculateTotal()
	assert.Equal(t, 0.0, cart.TotalAmount)
}

func TestProductVariation(t *testing.T) {
	product := Product{
		Variations: []Variation{
			{Size: "S", Price: 20, Stock: 5},
			{Size: "M", Price: 22, Stock: 0},
		},
	}

	v := product.Variation("M")
	if assert.NotNil(t, v) {
		assert.Equal(t, 22.0, v.Price)
	}
	assert.Nil(t, product.Variation("XL"))
}

func TestIsValidSize(t *testing.T) {
	assert.True(t, IsValidSize("XS"))
	assert.True(t, IsValidSize("XXXL"))
	assert.False(t, IsValidSize("xs"))
	assert.False(t, IsValidSize("38"))
}
