package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/services"
)

type WishlistController struct {
	wishlist *services.WishlistService
}

func NewWishlistController(wishlist *services.WishlistService) *WishlistController {
	return &WishlistController{wishlist: wishlist}
}

// GetWishlist returns the user's wishlist, empty if none exists yet.
func (wc *WishlistController) GetWishlist(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	wishlist, appErr := wc.wishlist.GetWishlist(c.Request.Context(), user)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "wishlist": wishlist})
}

// AddToWishlist saves a product; duplicates are rejected.
func (wc *WishlistController) AddToWishlist(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Product ID is required")
		return
	}
	productID, ok := objectID(c, req.ProductID)
	if !ok {
		return
	}

	wishlist, appErr := wc.wishlist.AddToWishlist(c.Request.Context(), user, productID)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Product added to wishlist",
		"wishlist": wishlist,
	})
}

// RemoveFromWishlist drops a saved product.
func (wc *WishlistController) RemoveFromWishlist(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := objectID(c, c.Param("productId"))
	if !ok {
		return
	}

	wishlist, appErr := wc.wishlist.RemoveFromWishlist(c.Request.Context(), user, productID)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Product removed from wishlist",
		"wishlist": wishlist,
	})
}
