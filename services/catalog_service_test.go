package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/repository"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("creates active category", func(t *testing.T) {
		categories := new(MockCategoryRepo)
		svc := NewCatalogService(categories, new(MockSubcategoryRepo), zap.NewNop())

		categories.On("FindByName", mock.Anything, "Shirts").Return(nil, repository.ErrNotFound).Once()
		categories.On("Create", mock.Anything, mock.AnythingOfType("*models.Category")).Return(nil).Once()

		category, appErr := svc.CreateCategory(ctx, "Shirts", "All shirts", "")

		assert.Nil(t, appErr)
		assert.Equal(t, "Shirts", category.Name)
		assert.True(t, category.IsActive)
	})

	t.Run("duplicate name rejected case-insensitively", func(t *testing.T) {
		categories := new(MockCategoryRepo)
		svc := NewCatalogService(categories, new(MockSubcategoryRepo), zap.NewNop())

		existing := &models.Category{ID: primitive.NewObjectID(), Name: "Shirts"}
		categories.On("FindByName", mock.Anything, "shirts").Return(existing, nil).Once()

		_, appErr := svc.CreateCategory(ctx, "shirts", "", "")

		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Category already exists", appErr.Message)
		categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		categories := new(MockCategoryRepo)
		svc := NewCatalogService(categories, new(MockSubcategoryRepo), zap.NewNop())

		_, appErr := svc.CreateCategory(ctx, "   ", "", "")

		assert.NotNil(t, appErr)
		assert.Equal(t, "Category name is required", appErr.Message)
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while subcategories exist", func(t *testing.T) {
		categories := new(MockCategoryRepo)
		subcategories := new(MockSubcategoryRepo)
		svc := NewCatalogService(categories, subcategories, zap.NewNop())

		category := &models.Category{ID: primitive.NewObjectID(), Name: "Shirts"}
		categories.On("FindByID", mock.Anything, category.ID).Return(category, nil).Once()
		subcategories.On("CountByCategory", mock.Anything, category.ID).Return(int64(2), nil).Once()

		appErr := svc.DeleteCategory(ctx, category.ID)

		assert.NotNil(t, appErr)
		assert.Equal(t, "Cannot delete category with existing subcategories", appErr.Message)
		categories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("empty category deletes", func(t *testing.T) {
		categories := new(MockCategoryRepo)
		subcategories := new(MockSubcategoryRepo)
		svc := NewCatalogService(categories, subcategories, zap.NewNop())

		category := &models.Category{ID: primitive.NewObjectID(), Name: "Shirts"}
		categories.On("FindByID", mock.Anything, category.ID).Return(category, nil).Once()
		subcategories.On("CountByCategory", mock.Anything, category.ID).Return(int64(0), nil).Once()
		categories.On("Delete", mock.Anything, category.ID).Return(nil).Once()

		appErr := svc.DeleteCategory(ctx, category.ID)

		assert.Nil(t, appErr)
		categories.AssertExpectations(t)
	})
}

func TestCreateSubcategory(t *testing.T) {
	ctx := context.Background()

	t.Run("parent must exist", func(t *testing.T) {
		categories := new(MockCategoryRepo)
		subcategories := new(MockSubcategoryRepo)
		svc := NewCatalogService(categories, subcategories, zap.NewNop())

		parent := primitive.NewObjectID()
		categories.On("FindByID", mock.Anything, parent).Return(nil, repository.ErrNotFound).Once()

		_, appErr := svc.CreateSubcategory(ctx, "T-Shirts", "", parent, "")

		assert.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Category not found", appErr.Message)
	})

	t.Run("name unique within parent only", func(t *testing.T) {
		categories := new(MockCategoryRepo)
		subcategories := new(MockSubcategoryRepo)
		svc := NewCatalogService(categories, subcategories, zap.NewNop())

		parent := &models.Category{ID: primitive.NewObjectID(), Name: "Shirts"}
		categories.On("FindByID", mock.Anything, parent.ID).Return(parent, nil).Once()

		existing := &models.Subcategory{ID: primitive.NewObjectID(), Name: "T-Shirts", Category: parent.ID}
		subcategories.On("FindByNameAndCategory", mock.Anything, "T-Shirts", parent.ID).Return(existing, nil).Once()

		_, appErr := svc.CreateSubcategory(ctx, "T-Shirts", "", parent.ID, "")

		assert.NotNil(t, appErr)
		assert.Equal(t, "Subcategory already exists in this category", appErr.Message)
	})

	t.Run("creates under parent", func(t *testing.T) {
		categories := new(MockCategoryRepo)
		subcategories := new(MockSubcategoryRepo)
		svc := NewCatalogService(categories, subcategories, zap.NewNop())

		parent := &models.Category{ID: primitive.NewObjectID(), Name: "Shirts"}
		categories.On("FindByID", mock.Anything, parent.ID).Return(parent, nil).Once()
		subcategories.On("FindByNameAndCategory", mock.Anything, "T-Shirts", parent.ID).Return(nil, repository.ErrNotFound).Once()
		subcategories.On("Create", mock.Anything, mock.AnythingOfType("*models.Subcategory")).Return(nil).Once()

		sub, appErr := svc.CreateSubcategory(ctx, "T-Shirts", "Short sleeves", parent.ID, "")

		assert.Nil(t, appErr)
		assert.Equal(t, parent.ID, sub.Category)
		assert.True(t, sub.IsActive)
	})
}

func TestUpdateSubcategory(t *testing.T) {
	ctx := context.Background()

	t.Run("moving between parents re-validates the name", func(t *testing.T) {
		categories := new(MockCategoryRepo)
		subcategories := new(MockSubcategoryRepo)
		svc := NewCatalogService(categories, subcategories, zap.NewNop())

		oldParent := primitive.NewObjectID()
		newParent := &models.Category{ID: primitive.NewObjectID(), Name: "Outerwear"}
		sub := &models.Subcategory{ID: primitive.NewObjectID(), Name: "Jackets", Category: oldParent}

		subcategories.On("FindByID", mock.Anything, sub.ID).Return(sub, nil).Once()
		categories.On("FindByID", mock.Anything, newParent.ID).Return(newParent, nil).Once()
		taken := &models.Subcategory{ID: primitive.NewObjectID(), Name: "Jackets", Category: newParent.ID}
		subcategories.On("FindByNameAndCategory", mock.Anything, "Jackets", newParent.ID).Return(taken, nil).Once()

		_, appErr := svc.UpdateSubcategory(ctx, sub.ID, SubcategoryUpdate{Category: &newParent.ID})

		assert.NotNil(t, appErr)
		assert.Equal(t, "Subcategory already exists in this category", appErr.Message)
		subcategories.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
