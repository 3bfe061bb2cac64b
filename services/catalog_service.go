package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	apperrors "github.com/yashwardhan0703/ecomerce-backend/errors"
	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/repository"
)

// CategoryUpdate carries optional fields for a category update. Nil means
// "leave unchanged".
type CategoryUpdate struct {
	Name        *string
	Description *string
	Image       *string
	IsActive    *bool
}

// SubcategoryUpdate carries optional fields for a subcategory update.
type SubcategoryUpdate struct {
	Name        *string
	Description *string
	Category    *primitive.ObjectID
	Image       *string
	IsActive    *bool
}

// CatalogService manages the category → subcategory tree.
type CatalogService struct {
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
	logger        *zap.Logger
}

func NewCatalogService(categories repository.CategoryRepository, subcategories repository.SubcategoryRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{categories: categories, subcategories: subcategories, logger: logger}
}

// CreateCategory creates a category. Names are unique case-insensitively.
func (s *CatalogService) CreateCategory(ctx context.Context, name, description, image string) (*models.Category, *apperrors.Error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.BadRequest("Category name is required")
	}

	_, err := s.categories.FindByName(ctx, name)
	if err == nil {
		return nil, apperrors.Conflict("Category already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}

	category := &models.Category{
		Name:        name,
		Description: description,
		Image:       image,
		IsActive:    true,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", zap.Error(err), zap.String("name", name))
		return nil, apperrors.Internal(err)
	}
	return category, nil
}

// ListCategories returns active categories, newest first.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, *apperrors.Error) {
	categories, err := s.categories.FindActive(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return categories, nil
}

// GetCategory returns one category by ID.
func (s *CatalogService) GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, *apperrors.Error) {
	category, err := s.categories.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Category not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return category, nil
}

// UpdateCategory applies the provided fields, re-validating name uniqueness
// against the proposed name.
func (s *CatalogService) UpdateCategory(ctx context.Context, id primitive.ObjectID, update CategoryUpdate) (*models.Category, *apperrors.Error) {
	category, appErr := s.GetCategory(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if update.Name != nil && *update.Name != "" && !strings.EqualFold(*update.Name, category.Name) {
		existing, err := s.categories.FindByName(ctx, *update.Name)
		if err == nil && existing.ID != id {
			return nil, apperrors.Conflict("Category name already exists")
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Internal(err)
		}
		category.Name = strings.TrimSpace(*update.Name)
	} else if update.Name != nil && *update.Name != "" {
		category.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		category.Description = *update.Description
	}
	if update.Image != nil {
		category.Image = *update.Image
	}
	if update.IsActive != nil {
		category.IsActive = *update.IsActive
	}

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, apperrors.Internal(err)
	}
	return category, nil
}

// DeleteCategory removes a category. It is blocked while any subcategory
// still references it.
func (s *CatalogService) DeleteCategory(ctx context.Context, id primitive.ObjectID) *apperrors.Error {
	if _, appErr := s.GetCategory(ctx, id); appErr != nil {
		return appErr
	}

	count, err := s.subcategories.CountByCategory(ctx, id)
	if err != nil {
		return apperrors.Internal(err)
	}
	if count > 0 {
		return apperrors.BadRequest("Cannot delete category with existing subcategories")
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// CreateSubcategory creates a subcategory under an existing category. The
// name must be unique within that category.
func (s *CatalogService) CreateSubcategory(ctx context.Context, name, description string, categoryID primitive.ObjectID, image string) (*models.Subcategory, *apperrors.Error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.BadRequest("Subcategory name is required")
	}

	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.BadRequest("Category not found")
		}
		return nil, apperrors.Internal(err)
	}

	_, err := s.subcategories.FindByNameAndCategory(ctx, name, categoryID)
	if err == nil {
		return nil, apperrors.Conflict("Subcategory already exists in this category")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}

	sub := &models.Subcategory{
		Name:        name,
		Description: description,
		Category:    categoryID,
		Image:       image,
		IsActive:    true,
	}
	if err := s.subcategories.Create(ctx, sub); err != nil {
		s.logger.Error("Failed to create subcategory", zap.Error(err), zap.String("name", name))
		return nil, apperrors.Internal(err)
	}
	return sub, nil
}

// ListSubcategories returns active subcategories, newest first.
func (s *CatalogService) ListSubcategories(ctx context.Context) ([]models.Subcategory, *apperrors.Error) {
	subs, err := s.subcategories.FindActive(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return subs, nil
}

// ListSubcategoriesByCategory returns a category's active subcategories.
func (s *CatalogService) ListSubcategoriesByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Subcategory, *apperrors.Error) {
	subs, err := s.subcategories.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return subs, nil
}

// GetSubcategory returns one subcategory by ID.
func (s *CatalogService) GetSubcategory(ctx context.Context, id primitive.ObjectID) (*models.Subcategory, *apperrors.Error) {
	sub, err := s.subcategories.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Subcategory not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return sub, nil
}

// UpdateSubcategory applies the provided fields, re-validating the
// (name, category) pair the document would end up with.
func (s *CatalogService) UpdateSubcategory(ctx context.Context, id primitive.ObjectID, update SubcategoryUpdate) (*models.Subcategory, *apperrors.Error) {
	sub, appErr := s.GetSubcategory(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	newCategory := sub.Category
	if update.Category != nil {
		if _, err := s.categories.FindByID(ctx, *update.Category); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.BadRequest("Category not found")
			}
			return nil, apperrors.Internal(err)
		}
		newCategory = *update.Category
	}

	newName := sub.Name
	if update.Name != nil && *update.Name != "" {
		newName = strings.TrimSpace(*update.Name)
	}

	if newName != sub.Name || newCategory != sub.Category {
		existing, err := s.subcategories.FindByNameAndCategory(ctx, newName, newCategory)
		if err == nil && existing.ID != id {
			return nil, apperrors.Conflict("Subcategory already exists in this category")
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Internal(err)
		}
	}

	sub.Name = newName
	sub.Category = newCategory
	if update.Description != nil {
		sub.Description = *update.Description
	}
	if update.Image != nil {
		sub.Image = *update.Image
	}
	if update.IsActive != nil {
		sub.IsActive = *update.IsActive
	}

	if err := s.subcategories.Save(ctx, sub); err != nil {
		return nil, apperrors.Internal(err)
	}
	return sub, nil
}

// DeleteSubcategory removes a subcategory.
func (s *CatalogService) DeleteSubcategory(ctx context.Context, id primitive.ObjectID) *apperrors.Error {
	if _, appErr := s.GetSubcategory(ctx, id); appErr != nil {
		return appErr
	}
	if err := s.subcategories.Delete(ctx, id); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
