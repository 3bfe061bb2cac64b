package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	apperrors "github.com/yashwardhan0703/ecomerce-backend/errors"
	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/repository"
)

// WishlistService manages per-user saved products.
type WishlistService struct {
	wishlists repository.WishlistRepository
	products  repository.ProductRepository
	logger    *zap.Logger
}

func NewWishlistService(wishlists repository.WishlistRepository, products repository.ProductRepository, logger *zap.Logger) *WishlistService {
	return &WishlistService{wishlists: wishlists, products: products, logger: logger}
}

// GetWishlist returns the user's wishlist. A user who has never saved a
// product gets an empty wishlist, not an error.
func (s *WishlistService) GetWishlist(ctx context.Context, user primitive.ObjectID) (*models.Wishlist, *apperrors.Error) {
	wishlist, err := s.wishlists.FindByUser(ctx, user)
	if errors.Is(err, repository.ErrNotFound) {
		return &models.Wishlist{User: user, Products: []models.WishlistEntry{}}, nil
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return wishlist, nil
}

// AddToWishlist saves a product to the user's wishlist. The product must
// exist and may appear at most once.
func (s *WishlistService) AddToWishlist(ctx context.Context, user, productID primitive.ObjectID) (*models.Wishlist, *apperrors.Error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, apperrors.Internal(err)
	}

	wishlist, err := s.wishlists.FindByUser(ctx, user)
	if errors.Is(err, repository.ErrNotFound) {
		wishlist = &models.Wishlist{User: user, Products: []models.WishlistEntry{}}
	} else if err != nil {
		return nil, apperrors.Internal(err)
	}

	for _, entry := range wishlist.Products {
		if entry.Product == productID {
			return nil, apperrors.Conflict("Product already in wishlist")
		}
	}

	wishlist.Products = append(wishlist.Products, models.WishlistEntry{
		Product: productID,
		AddedAt: time.Now().UTC(),
	})

	if err := s.wishlists.Save(ctx, wishlist); err != nil {
		return nil, apperrors.Internal(err)
	}
	return wishlist, nil
}

// RemoveFromWishlist drops a product from the user's wishlist.
func (s *WishlistService) RemoveFromWishlist(ctx context.Context, user, productID primitive.ObjectID) (*models.Wishlist, *apperrors.Error) {
	wishlist, err := s.wishlists.FindByUser(ctx, user)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Wishlist not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	found := false
	kept := wishlist.Products[:0]
	for _, entry := range wishlist.Products {
		if entry.Product == productID {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return nil, apperrors.NotFound("Product not in wishlist")
	}
	wishlist.Products = kept

	if err := s.wishlists.Save(ctx, wishlist); err != nil {
		return nil, apperrors.Internal(err)
	}
	return wishlist, nil
}
