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

// CartService manages one cart per user. Lines are addressed by the
// (product, size) composite key, never by an item ID.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// GetCart returns the user's cart, or an empty one when none exists yet.
func (s *CartService) GetCart(ctx context.Context, user primitive.ObjectID) (*models.Cart, *apperrors.Error) {
	cart, err := s.carts.FindByUser(ctx, user)
	if errors.Is(err, repository.ErrNotFound) {
		return &models.Cart{User: user, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return cart, nil
}

// AddToCart adds a line or merges into an existing (product, size) line,
// refreshing the price snapshot to the variation's current price.
func (s *CartService) AddToCart(ctx context.Context, user primitive.ObjectID, req models.AddToCartRequest) (*models.Cart, *apperrors.Error) {
	productID, e := primitive.ObjectIDFromHex(req.ProductID)
	if e != nil {
		return nil, apperrors.BadRequest("Valid product ID is required")
	}

	product, err := s.products.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	variation := product.Variation(req.Size)
	if variation == nil {
		return nil, apperrors.BadRequest("Size not available for this product")
	}
	if variation.Stock < req.Quantity {
		return nil, apperrors.InsufficientStock("Insufficient stock")
	}

	cart, appErr := s.GetCart(ctx, user)
	if appErr != nil {
		return nil, appErr
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].Product == productID && cart.Items[i].Size == req.Size {
			cart.Items[i].Quantity += req.Quantity
			cart.Items[i].Price = variation.Price
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			Product:  productID,
			Size:     req.Size,
			Quantity: req.Quantity,
			Price:    variation.Price,
			AddedAt:  time.Now().UTC(),
		})
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err), zap.String("user_id", user.Hex()))
		return nil, apperrors.Internal(err)
	}
	return cart, nil
}

// UpdateCartItem sets a line's quantity. Zero or less removes the line;
// otherwise current stock is re-checked before applying.
func (s *CartService) UpdateCartItem(ctx context.Context, user primitive.ObjectID, req models.UpdateCartRequest) (*models.Cart, *apperrors.Error) {
	productID, e := primitive.ObjectIDFromHex(req.ProductID)
	if e != nil {
		return nil, apperrors.BadRequest("Valid product ID is required")
	}

	cart, err := s.carts.FindByUser(ctx, user)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Cart not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].Product == productID && cart.Items[i].Size == req.Size {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.NotFound("Item not found in cart")
	}

	if req.Quantity <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		product, err := s.products.FindByID(ctx, productID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		if err != nil {
			return nil, apperrors.Internal(err)
		}

		variation := product.Variation(req.Size)
		if variation == nil {
			return nil, apperrors.BadRequest("Size not available for this product")
		}
		if variation.Stock < req.Quantity {
			return nil, apperrors.InsufficientStock("Insufficient stock")
		}

		cart.Items[idx].Quantity = req.Quantity
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperrors.Internal(err)
	}
	return cart, nil
}

// RemoveFromCart removes the (product, size) line if present.
func (s *CartService) RemoveFromCart(ctx context.Context, user primitive.ObjectID, rawProductID, size string) (*models.Cart, *apperrors.Error) {
	productID, e := primitive.ObjectIDFromHex(rawProductID)
	if e != nil {
		return nil, apperrors.BadRequest("Valid product ID is required")
	}

	cart, err := s.carts.FindByUser(ctx, user)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Cart not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if !(item.Product == productID && item.Size == size) {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperrors.Internal(err)
	}
	return cart, nil
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(ctx context.Context, user primitive.ObjectID) (*models.Cart, *apperrors.Error) {
	cart, err := s.carts.FindByUser(ctx, user)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Cart not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	cart.Items = []models.CartItem{}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, apperrors.Internal(err)
	}
	return cart, nil
}
