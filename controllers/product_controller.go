package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yashwardhan0703/ecomerce-backend/cache"
	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/repository"
	"github.com/yashwardhan0703/ecomerce-backend/services"
	"github.com/yashwardhan0703/ecomerce-backend/storage"
)

const maxProductImages = 10

type ProductController struct {
	products *services.ProductService
	cache    *cache.CatalogCache
	uploader storage.Uploader
}

func NewProductController(products *services.ProductService, catalogCache *cache.CatalogCache, uploader storage.Uploader) *ProductController {
	return &ProductController{products: products, cache: catalogCache, uploader: uploader}
}

type productForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Subcategory string `form:"subcategory"`
	Brand       string `form:"brand"`
	// Variations arrives as a JSON array string inside the multipart form.
	Variations string `form:"variations"`
}

func parseVariations(raw string) ([]models.Variation, error) {
	var variations []models.Variation
	if err := json.Unmarshal([]byte(raw), &variations); err != nil {
		return nil, fmt.Errorf("invalid variations payload: %w", err)
	}
	return variations, nil
}

// CreateProduct creates a product from a multipart form: scalar fields, a
// JSON-encoded variations array, and image file uploads. Admin only.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}
	if form.Name == "" || form.Subcategory == "" || form.Variations == "" {
		badRequest(c, "Name, subcategory and variations are required")
		return
	}

	subcategoryID, ok := objectID(c, form.Subcategory)
	if !ok {
		return
	}

	variations, err := parseVariations(form.Variations)
	if err != nil {
		badRequest(c, "Invalid variations format")
		return
	}

	images, ok := pc.uploadImages(c)
	if !ok {
		return
	}

	product, appErr := pc.products.CreateProduct(c.Request.Context(), services.ProductCreate{
		Name:        form.Name,
		Description: form.Description,
		Subcategory: subcategoryID,
		Brand:       form.Brand,
		Variations:  variations,
		Images:      images,
	})
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	pc.cache.InvalidateProduct(c.Request.Context(), product.ID.Hex())

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully",
		"product": product,
	})
}

// uploadImages stores every "images" form file. Replies 400 itself on
// failure; callers return when ok is false.
func (pc *ProductController) uploadImages(c *gin.Context) ([]string, bool) {
	mpForm, err := c.MultipartForm()
	if err != nil {
		return nil, true
	}
	files := mpForm.File["images"]
	if len(files) == 0 {
		return nil, true
	}
	if len(files) > maxProductImages {
		badRequest(c, "A product can carry at most 10 images")
		return nil, false
	}

	urls, err := storage.UploadAll(c.Request.Context(), pc.uploader, files)
	if err != nil {
		badRequest(c, err.Error())
		return nil, false
	}
	return urls, true
}

// ListProducts returns active products with optional subcategory, size and
// price filters, paginated. List responses are served from the catalog cache
// when possible.
func (pc *ProductController) ListProducts(c *gin.Context) {
	page, limit := pagination(c)

	var filter repository.ProductFilter
	if raw := c.Query("subcategory"); raw != "" {
		id, ok := objectID(c, raw)
		if !ok {
			return
		}
		filter.Subcategory = &id
	}
	filter.Size = c.Query("size")
	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequest(c, "Invalid minPrice")
			return
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequest(c, "Invalid maxPrice")
			return
		}
		filter.MaxPrice = &v
	}

	cacheKey := fmt.Sprintf("list:%s:%s:%s:%s:%d:%d",
		c.Query("subcategory"), filter.Size, c.Query("minPrice"), c.Query("maxPrice"), page, limit)
	if payload, ok := pc.cache.GetProductList(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	products, total, appErr := pc.products.ListProducts(c.Request.Context(), filter, page, limit)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	body := gin.H{
		"success":  true,
		"products": products,
		"meta":     paginationMeta(len(products), total, page, limit),
	}
	pc.cache.SetProductList(cacheKey, body)
	c.JSON(http.StatusOK, body)
}

// ListBySubcategory returns every active product under a subcategory.
func (pc *ProductController) ListBySubcategory(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	products, appErr := pc.products.ListBySubcategory(c.Request.Context(), id)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	raw := c.Param("id")
	id, ok := objectID(c, raw)
	if !ok {
		return
	}

	if payload, ok := pc.cache.GetProduct(c.Request.Context(), raw); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	product, appErr := pc.products.GetProduct(c.Request.Context(), id)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	body := gin.H{"success": true, "product": product}
	pc.cache.SetProduct(raw, body)
	c.JSON(http.StatusOK, body)
}

// UpdateProduct applies partial updates from a multipart form. Admin only.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}

	var update services.ProductUpdate
	if form.Name != "" {
		update.Name = &form.Name
	}
	if form.Description != "" {
		update.Description = &form.Description
	}
	if form.Brand != "" {
		update.Brand = &form.Brand
	}
	if form.Subcategory != "" {
		subcategoryID, ok := objectID(c, form.Subcategory)
		if !ok {
			return
		}
		update.Subcategory = &subcategoryID
	}
	if form.Variations != "" {
		variations, err := parseVariations(form.Variations)
		if err != nil {
			badRequest(c, "Invalid variations format")
			return
		}
		update.Variations = variations
	}
	if raw, hasActive := c.GetPostForm("isActive"); hasActive {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "Invalid isActive value")
			return
		}
		update.IsActive = &active
	}

	images, ok := pc.uploadImages(c)
	if !ok {
		return
	}
	update.Images = images

	product, appErr := pc.products.UpdateProduct(c.Request.Context(), id, update)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	pc.cache.InvalidateProduct(c.Request.Context(), product.ID.Hex())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct removes a product. Admin only.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	if appErr := pc.products.DeleteProduct(c.Request.Context(), id); appErr != nil {
		respondError(c, appErr)
		return
	}

	pc.cache.InvalidateProduct(c.Request.Context(), id.Hex())

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}

// SetBanner uploads and attaches a banner image to a product. Admin only.
func (pc *ProductController) SetBanner(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	file, err := c.FormFile("banner")
	if err != nil {
		badRequest(c, "Banner image is required")
		return
	}
	url, err := pc.uploader.Upload(c.Request.Context(), file)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	product, appErr := pc.products.SetBanner(c.Request.Context(), id, url)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	pc.cache.InvalidateProduct(c.Request.Context(), id.Hex())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Banner updated successfully",
		"product": product,
	})
}

// GetBanner returns a product's banner image URL.
func (pc *ProductController) GetBanner(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	product, appErr := pc.products.GetBanner(c.Request.Context(), id)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "banner": product.Banner})
}

// ListBanners returns products carrying a banner image, paginated.
func (pc *ProductController) ListBanners(c *gin.Context) {
	page, limit := pagination(c)

	products, total, appErr := pc.products.ListBanners(c.Request.Context(), page, limit)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"meta":     paginationMeta(len(products), total, page, limit),
	})
}

// ListDeals returns products whose special-deal window is currently open,
// best discount first.
func (pc *ProductController) ListDeals(c *gin.Context) {
	page, limit := pagination(c)

	products, total, appErr := pc.products.ListDeals(c.Request.Context(), page, limit)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"meta":     paginationMeta(len(products), total, page, limit),
	})
}

// UpdateSpecialDeal sets or clears a product's deal window. Admin only.
func (pc *ProductController) UpdateSpecialDeal(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	var req models.SpecialDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}

	product, appErr := pc.products.UpdateSpecialDeal(c.Request.Context(), id, req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	pc.cache.InvalidateProduct(c.Request.Context(), id.Hex())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Special deal updated successfully",
		"product": product,
	})
}
