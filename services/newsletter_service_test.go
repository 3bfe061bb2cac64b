package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/yashwardhan0703/ecomerce-backend/models"
)

func TestNewsletterLifecycle(t *testing.T) {
	ctx := context.Background()
	admin := primitive.NewObjectID()

	t.Run("create records the author and starts active", func(t *testing.T) {
		newsletters := new(MockNewsletterRepo)
		svc := NewNewsletterService(newsletters, zap.NewNop())

		newsletters.On("Create", mock.Anything, mock.AnythingOfType("*models.Newsletter")).Return(nil).Once()

		newsletter, appErr := svc.Create(ctx, admin, NewsletterCreate{
			Title:   "Autumn drop",
			Content: "New arrivals this week.",
		})

		assert.Nil(t, appErr)
		assert.Equal(t, admin, newsletter.CreatedBy)
		assert.True(t, newsletter.IsActive)
		assert.NotNil(t, newsletter.Media)
	})

	t.Run("update changes only provided fields", func(t *testing.T) {
		newsletters := new(MockNewsletterRepo)
		svc := NewNewsletterService(newsletters, zap.NewNop())

		existing := &models.Newsletter{
			ID:       primitive.NewObjectID(),
			Title:    "Autumn drop",
			Content:  "Original content",
			IsActive: true,
		}
		newsletters.On("FindByID", mock.Anything, existing.ID).Return(existing, nil).Once()
		newsletters.On("Save", mock.Anything, existing).Return(nil).Once()

		title := "Autumn drop, extended"
		updated, appErr := svc.Update(ctx, existing.ID, NewsletterUpdate{Title: &title})

		assert.Nil(t, appErr)
		assert.Equal(t, title, updated.Title)
		assert.Equal(t, "Original content", updated.Content)
	})

	t.Run("delete deactivates instead of removing", func(t *testing.T) {
		newsletters := new(MockNewsletterRepo)
		svc := NewNewsletterService(newsletters, zap.NewNop())

		existing := &models.Newsletter{ID: primitive.NewObjectID(), IsActive: true}
		newsletters.On("FindByID", mock.Anything, existing.ID).Return(existing, nil).Once()
		newsletters.On("Save", mock.Anything, existing).Return(nil).Once()

		appErr := svc.Delete(ctx, existing.ID)

		assert.Nil(t, appErr)
		assert.False(t, existing.IsActive)
	})
}
