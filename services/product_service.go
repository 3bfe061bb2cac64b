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

// ProductCreate is the validated input for creating a product.
type ProductCreate struct {
	Name        string
	Description string
	Subcategory primitive.ObjectID
	Brand       string
	Variations  []models.Variation
	Images      []string
}

// ProductUpdate carries optional fields for a product update.
type ProductUpdate struct {
	Name        *string
	Description *string
	Subcategory *primitive.ObjectID
	Brand       *string
	Variations  []models.Variation
	Images      []string
	IsActive    *bool
}

// ProductService manages catalog items, banners and special deals.
type ProductService struct {
	products      repository.ProductRepository
	subcategories repository.SubcategoryRepository
	logger        *zap.Logger
}

func NewProductService(products repository.ProductRepository, subcategories repository.SubcategoryRepository, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, subcategories: subcategories, logger: logger}
}

// validateVariations checks the size enum, non-negative price/stock and
// size uniqueness within the list.
func validateVariations(variations []models.Variation) *apperrors.Error {
	if len(variations) == 0 {
		return apperrors.BadRequest("At least one variation is required")
	}
	seen := make(map[string]bool, len(variations))
	for _, v := range variations {
		if !models.IsValidSize(v.Size) {
			return apperrors.BadRequest("Invalid size: " + v.Size)
		}
		if v.Price < 0 {
			return apperrors.BadRequest("Price cannot be negative")
		}
		if v.Stock < 0 {
			return apperrors.BadRequest("Stock cannot be negative")
		}
		if seen[v.Size] {
			return apperrors.BadRequest("Duplicate sizes are not allowed in variations")
		}
		seen[v.Size] = true
	}
	return nil
}

// CreateProduct creates a product under an existing subcategory.
func (s *ProductService) CreateProduct(ctx context.Context, req ProductCreate) (*models.Product, *apperrors.Error) {
	if _, err := s.subcategories.FindByID(ctx, req.Subcategory); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.BadRequest("Subcategory not found")
		}
		return nil, apperrors.Internal(err)
	}

	if appErr := validateVariations(req.Variations); appErr != nil {
		return nil, appErr
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Subcategory: req.Subcategory,
		Brand:       req.Brand,
		Variations:  req.Variations,
		Images:      req.Images,
		IsActive:    true,
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, apperrors.Internal(err)
	}
	return product, nil
}

// ListProducts returns active products matching the filter, paginated.
func (s *ProductService) ListProducts(ctx context.Context, filter repository.ProductFilter, page, limit int) ([]models.Product, int64, *apperrors.Error) {
	products, total, err := s.products.Find(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	return products, total, nil
}

// ListBySubcategory returns a subcategory's active products.
func (s *ProductService) ListBySubcategory(ctx context.Context, subcategory primitive.ObjectID) ([]models.Product, *apperrors.Error) {
	products, err := s.products.FindBySubcategory(ctx, subcategory)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return products, nil
}

// GetProduct returns one product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, *apperrors.Error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return product, nil
}

// UpdateProduct applies the provided fields. Variations, when supplied,
// replace the whole list and are re-validated for size uniqueness.
func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, update ProductUpdate) (*models.Product, *apperrors.Error) {
	product, appErr := s.GetProduct(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if update.Subcategory != nil {
		if _, err := s.subcategories.FindByID(ctx, *update.Subcategory); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.BadRequest("Subcategory not found")
			}
			return nil, apperrors.Internal(err)
		}
		product.Subcategory = *update.Subcategory
	}

	if update.Variations != nil {
		if appErr := validateVariations(update.Variations); appErr != nil {
			return nil, appErr
		}
		product.Variations = update.Variations
	}

	if update.Name != nil && *update.Name != "" {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Brand != nil {
		product.Brand = *update.Brand
	}
	if update.Images != nil {
		product.Images = update.Images
	}
	if update.IsActive != nil {
		product.IsActive = *update.IsActive
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, apperrors.Internal(err)
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *ProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) *apperrors.Error {
	if _, appErr := s.GetProduct(ctx, id); appErr != nil {
		return appErr
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// SetBanner attaches a promotional banner image to a product.
func (s *ProductService) SetBanner(ctx context.Context, id primitive.ObjectID, bannerURL string) (*models.Product, *apperrors.Error) {
	product, appErr := s.GetProduct(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	product.Banner = bannerURL
	if err := s.products.Save(ctx, product); err != nil {
		return nil, apperrors.Internal(err)
	}
	return product, nil
}

// GetBanner returns a product's banner, failing when none is set.
func (s *ProductService) GetBanner(ctx context.Context, id primitive.ObjectID) (*models.Product, *apperrors.Error) {
	product, appErr := s.GetProduct(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	if product.Banner == "" {
		return nil, apperrors.NotFound("Banner not found for this product")
	}
	return product, nil
}

// ListBanners returns products carrying a banner, paginated.
func (s *ProductService) ListBanners(ctx context.Context, page, limit int) ([]models.Product, int64, *apperrors.Error) {
	products, total, err := s.products.FindBanners(ctx, page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	return products, total, nil
}

// ListDeals returns active products inside their deal window, best discount
// first.
func (s *ProductService) ListDeals(ctx context.Context, page, limit int) ([]models.Product, int64, *apperrors.Error) {
	products, total, err := s.products.FindDeals(ctx, time.Now().UTC(), page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	return products, total, nil
}

// UpdateSpecialDeal creates, replaces or clears a product's time-boxed
// discount.
func (s *ProductService) UpdateSpecialDeal(ctx context.Context, id primitive.ObjectID, req models.SpecialDealRequest) (*models.Product, *apperrors.Error) {
	product, appErr := s.GetProduct(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.IsSpecialDeal {
		if req.DealDiscount <= 0 || req.DealDiscount > 100 {
			return nil, apperrors.BadRequest("Deal discount must be between 0 and 100")
		}
		if req.DealStartDate == "" || req.DealEndDate == "" {
			return nil, apperrors.BadRequest("Deal start and end dates are required")
		}

		start, err := parseDate(req.DealStartDate)
		if err != nil {
			return nil, apperrors.BadRequest("Invalid deal start date")
		}
		end, err := parseDate(req.DealEndDate)
		if err != nil {
			return nil, apperrors.BadRequest("Invalid deal end date")
		}
		if !start.Before(end) {
			return nil, apperrors.BadRequest("Deal end date must be after start date")
		}

		product.IsSpecialDeal = true
		product.DealDiscount = req.DealDiscount
		product.DealStartDate = &start
		product.DealEndDate = &end
	} else {
		product.IsSpecialDeal = false
		product.DealDiscount = 0
		product.DealStartDate = nil
		product.DealEndDate = nil
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, apperrors.Internal(err)
	}
	return product, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
