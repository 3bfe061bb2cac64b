package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// GetCart returns the authenticated user's cart, empty if none exists yet.
func (cc *CartController) GetCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	cart, appErr := cc.cart.GetCart(c.Request.Context(), user)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
}

// AddToCart adds a quantity of a product variation, merging with an existing
// line for the same product and size.
func (cc *CartController) AddToCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}

	cart, appErr := cc.cart.AddToCart(c.Request.Context(), user, req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item added to cart",
		"cart":    cart,
	})
}

// UpdateCartItem sets a line's quantity; zero or less removes the line.
func (cc *CartController) UpdateCartItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}

	cart, appErr := cc.cart.UpdateCartItem(c.Request.Context(), user, req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart updated",
		"cart":    cart,
	})
}

// RemoveFromCart drops one line, addressed by product ID and size.
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	cart, appErr := cc.cart.RemoveFromCart(c.Request.Context(), user, c.Param("productId"), c.Query("size"))
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item removed from cart",
		"cart":    cart,
	})
}

// ClearCart empties the user's cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	cart, appErr := cc.cart.ClearCart(c.Request.Context(), user)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart cleared",
		"cart":    cart,
	})
}
