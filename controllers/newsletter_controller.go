package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashwardhan0703/ecomerce-backend/services"
	"github.com/yashwardhan0703/ecomerce-backend/storage"
)

type NewsletterController struct {
	newsletters *services.NewsletterService
	uploader    storage.Uploader
}

func NewNewsletterController(newsletters *services.NewsletterService, uploader storage.Uploader) *NewsletterController {
	return &NewsletterController{newsletters: newsletters, uploader: uploader}
}

type newsletterForm struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

// Create publishes a newsletter, with optional media uploads. Admin only.
func (nc *NewsletterController) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var form newsletterForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "Title and content are required")
		return
	}

	media, ok := nc.uploadMedia(c)
	if !ok {
		return
	}

	newsletter, appErr := nc.newsletters.Create(c.Request.Context(), user, services.NewsletterCreate{
		Title:   form.Title,
		Content: form.Content,
		Media:   media,
	})
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Newsletter created successfully",
		"newsletter": newsletter,
	})
}

func (nc *NewsletterController) uploadMedia(c *gin.Context) ([]string, bool) {
	mpForm, err := c.MultipartForm()
	if err != nil {
		return nil, true
	}
	files := mpForm.File["media"]
	if len(files) == 0 {
		return nil, true
	}

	urls, err := storage.UploadAll(c.Request.Context(), nc.uploader, files)
	if err != nil {
		badRequest(c, err.Error())
		return nil, false
	}
	return urls, true
}

// ListActive returns active newsletters, newest first.
func (nc *NewsletterController) ListActive(c *gin.Context) {
	newsletters, appErr := nc.newsletters.ListActive(c.Request.Context())
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       len(newsletters),
		"newsletters": newsletters,
	})
}

func (nc *NewsletterController) Get(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	newsletter, appErr := nc.newsletters.Get(c.Request.Context(), id)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "newsletter": newsletter})
}

// Update applies partial edits to a newsletter. Admin only.
func (nc *NewsletterController) Update(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	var update services.NewsletterUpdate
	if title, has := c.GetPostForm("title"); has {
		update.Title = &title
	}
	if content, has := c.GetPostForm("content"); has {
		update.Content = &content
	}
	media, ok := nc.uploadMedia(c)
	if !ok {
		return
	}
	if media != nil {
		update.Media = &media
	}

	newsletter, appErr := nc.newsletters.Update(c.Request.Context(), id, update)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Newsletter updated successfully",
		"newsletter": newsletter,
	})
}

// Delete deactivates a newsletter. Admin only.
func (nc *NewsletterController) Delete(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	if appErr := nc.newsletters.Delete(c.Request.Context(), id); appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Newsletter deleted successfully"})
}
