package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	apperrors "github.com/yashwardhan0703/ecomerce-backend/errors"
	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/repository"
)

// NewsletterCreate is the admin payload for publishing a newsletter.
type NewsletterCreate struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Media   []string `json:"media"`
}

// NewsletterUpdate carries optional field updates; nil means unchanged.
type NewsletterUpdate struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Media   *[]string `json:"media"`
}

// NewsletterService manages marketing content records.
type NewsletterService struct {
	newsletters repository.NewsletterRepository
	logger      *zap.Logger
}

func NewNewsletterService(newsletters repository.NewsletterRepository, logger *zap.Logger) *NewsletterService {
	return &NewsletterService{newsletters: newsletters, logger: logger}
}

func (s *NewsletterService) Create(ctx context.Context, createdBy primitive.ObjectID, req NewsletterCreate) (*models.Newsletter, *apperrors.Error) {
	newsletter := &models.Newsletter{
		Title:     req.Title,
		Content:   req.Content,
		Media:     req.Media,
		IsActive:  true,
		CreatedBy: createdBy,
	}
	if newsletter.Media == nil {
		newsletter.Media = []string{}
	}

	if err := s.newsletters.Create(ctx, newsletter); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("Newsletter created",
		zap.String("newsletter_id", newsletter.ID.Hex()),
		zap.String("created_by", createdBy.Hex()))
	return newsletter, nil
}

// ListActive returns active newsletters, newest first.
func (s *NewsletterService) ListActive(ctx context.Context) ([]models.Newsletter, *apperrors.Error) {
	newsletters, err := s.newsletters.FindActive(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return newsletters, nil
}

func (s *NewsletterService) Get(ctx context.Context, id primitive.ObjectID) (*models.Newsletter, *apperrors.Error) {
	newsletter, err := s.newsletters.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Newsletter not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return newsletter, nil
}

func (s *NewsletterService) Update(ctx context.Context, id primitive.ObjectID, req NewsletterUpdate) (*models.Newsletter, *apperrors.Error) {
	newsletter, appErr := s.Get(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.Title != nil {
		newsletter.Title = *req.Title
	}
	if req.Content != nil {
		newsletter.Content = *req.Content
	}
	if req.Media != nil {
		newsletter.Media = *req.Media
	}

	if err := s.newsletters.Save(ctx, newsletter); err != nil {
		return nil, apperrors.Internal(err)
	}
	return newsletter, nil
}

// Delete deactivates a newsletter. The record is kept for audit.
func (s *NewsletterService) Delete(ctx context.Context, id primitive.ObjectID) *apperrors.Error {
	newsletter, appErr := s.Get(ctx, id)
	if appErr != nil {
		return appErr
	}

	newsletter.IsActive = false
	if err := s.newsletters.Save(ctx, newsletter); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
