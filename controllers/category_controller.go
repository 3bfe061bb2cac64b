package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yashwardhan0703/ecomerce-backend/errors"
	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/services"
	"github.com/yashwardhan0703/ecomerce-backend/storage"
)

type CategoryController struct {
	catalog  *services.CatalogService
	uploader storage.Uploader
}

func NewCategoryController(catalog *services.CatalogService, uploader storage.Uploader) *CategoryController {
	return &CategoryController{catalog: catalog, uploader: uploader}
}

// uploadImage stores the optional "image" form file and returns its URL.
// Replies 400 itself on upload failure; callers return when ok is false.
func (cc *CategoryController) uploadImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		// No file attached.
		return "", true
	}
	url, err := cc.uploader.Upload(c.Request.Context(), file)
	if err != nil {
		badRequest(c, err.Error())
		return "", false
	}
	return url, true
}

type createCategoryForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}

type updateCategoryForm struct {
	Name        *string `form:"name"`
	Description *string `form:"description"`
	IsActive    *bool   `form:"isActive"`
}

// CreateCategory creates a top-level category, optionally with an image
// upload. Admin only.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var form createCategoryForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "Category name is required")
		return
	}

	image, ok := cc.uploadImage(c)
	if !ok {
		return
	}

	category, appErr := cc.catalog.CreateCategory(c.Request.Context(), form.Name, form.Description, image)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Category created successfully",
		"category": category,
	})
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, appErr := cc.catalog.ListCategories(c.Request.Context())
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(categories),
		"categories": categories,
	})
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	category, appErr := cc.catalog.GetCategory(c.Request.Context(), id)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

// UpdateCategory applies partial updates. Admin only.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	var form updateCategoryForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}

	update := services.CategoryUpdate{
		Name:        form.Name,
		Description: form.Description,
		IsActive:    form.IsActive,
	}
	image, ok := cc.uploadImage(c)
	if !ok {
		return
	}
	if image != "" {
		update.Image = &image
	}

	category, appErr := cc.catalog.UpdateCategory(c.Request.Context(), id, update)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DeleteCategory removes an empty category. Admin only.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	if appErr := cc.catalog.DeleteCategory(c.Request.Context(), id); appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully"})
}

type createSubcategoryForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	Category    string `form:"category" binding:"required"`
}

type updateSubcategoryForm struct {
	Name        *string `form:"name"`
	Description *string `form:"description"`
	Category    *string `form:"category"`
	IsActive    *bool   `form:"isActive"`
}

// CreateSubcategory creates a subcategory under an existing category. Admin
// only.
func (cc *CategoryController) CreateSubcategory(c *gin.Context) {
	var form createSubcategoryForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "Subcategory name and category are required")
		return
	}

	categoryID, ok := objectID(c, form.Category)
	if !ok {
		return
	}

	image, ok := cc.uploadImage(c)
	if !ok {
		return
	}

	subcategory, appErr := cc.catalog.CreateSubcategory(c.Request.Context(), form.Name, form.Description, categoryID, image)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Subcategory created successfully",
		"subcategory": subcategory,
	})
}

// ListSubcategories returns all subcategories, or those of one category when
// a ?category= filter is present.
func (cc *CategoryController) ListSubcategories(c *gin.Context) {
	var subcategories []models.Subcategory
	var appErr *apperrors.Error

	if raw := c.Query("category"); raw != "" {
		categoryID, ok := objectID(c, raw)
		if !ok {
			return
		}
		subcategories, appErr = cc.catalog.ListSubcategoriesByCategory(c.Request.Context(), categoryID)
	} else {
		subcategories, appErr = cc.catalog.ListSubcategories(c.Request.Context())
	}
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"count":         len(subcategories),
		"subcategories": subcategories,
	})
}

func (cc *CategoryController) GetSubcategory(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	subcategory, appErr := cc.catalog.GetSubcategory(c.Request.Context(), id)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "subcategory": subcategory})
}

// UpdateSubcategory applies partial updates, re-validating the (name,
// category) pair. Admin only.
func (cc *CategoryController) UpdateSubcategory(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	var form updateSubcategoryForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}

	update := services.SubcategoryUpdate{
		Name:        form.Name,
		Description: form.Description,
		IsActive:    form.IsActive,
	}
	if form.Category != nil {
		categoryID, ok := objectID(c, *form.Category)
		if !ok {
			return
		}
		update.Category = &categoryID
	}
	image, ok := cc.uploadImage(c)
	if !ok {
		return
	}
	if image != "" {
		update.Image = &image
	}

	subcategory, appErr := cc.catalog.UpdateSubcategory(c.Request.Context(), id, update)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Subcategory updated successfully",
		"subcategory": subcategory,
	})
}

// DeleteSubcategory removes a subcategory. Admin only.
func (cc *CategoryController) DeleteSubcategory(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	if appErr := cc.catalog.DeleteSubcategory(c.Request.Context(), id); appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subcategory deleted successfully"})
}
