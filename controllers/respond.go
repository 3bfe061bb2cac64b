package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/yashwardhan0703/ecomerce-backend/errors"
	"github.com/yashwardhan0703/ecomerce-backend/middleware"
	"github.com/yashwardhan0703/ecomerce-backend/services"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

func respondError(c *gin.Context, err *apperrors.Error) {
	c.JSON(err.Code, gin.H{"success": false, "message": err.Message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// objectID parses a hex ID from the request, replying 400 itself on failure.
// Callers return immediately when ok is false.
func objectID(c *gin.Context, raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		badRequest(c, "Invalid ID format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// currentUser extracts the authenticated user's ID, replying 401 itself when
// the auth middleware did not run.
func currentUser(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, apperrors.Unauthorized("Unauthorized"))
		return primitive.NilObjectID, false
	}
	return id, true
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func paginationMeta(count int, total int64, page, limit int) gin.H {
	return gin.H{
		"count":       count,
		"total":       total,
		"totalPages":  services.TotalPages(total, limit),
		"currentPage": page,
	}
}
