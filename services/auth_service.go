package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/yashwardhan0703/ecomerce-backend/errors"
	"github.com/yashwardhan0703/ecomerce-backend/middleware"
	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/repository"
)

// AuthService handles account creation and session token issuance.
type AuthService struct {
	users     repository.UserRepository
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthService(users repository.UserRepository, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, logger: logger}
}

// Signup creates a regular user account and returns it with a session token.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, string, *apperrors.Error) {
	return s.register(ctx, req, models.RoleUser)
}

// AdminRegister creates an admin account and returns it with a session token.
func (s *AuthService) AdminRegister(ctx context.Context, req models.SignupRequest) (*models.User, string, *apperrors.Error) {
	return s.register(ctx, req, models.RoleAdmin)
}

func (s *AuthService) register(ctx context.Context, req models.SignupRequest, role string) (*models.User, string, *apperrors.Error) {
	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, "", apperrors.Conflict("Email already registered")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", apperrors.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, "", apperrors.Internal(err)
	}

	token, err := middleware.GenerateToken(s.jwtSecret, user.ID, user.Role)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}

	s.logger.Info("Account created", zap.String("user_id", user.ID.Hex()), zap.String("role", role))
	return user, token, nil
}

// Login authenticates email/password and returns the user with a session
// token. Missing user and bad password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, *apperrors.Error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", apperrors.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return s.authenticate(user, req.Password)
}

// AdminLogin authenticates against admin accounts only.
func (s *AuthService) AdminLogin(ctx context.Context, req models.LoginRequest) (*models.User, string, *apperrors.Error) {
	user, err := s.users.FindByEmailAndRole(ctx, req.Email, models.RoleAdmin)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", apperrors.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return s.authenticate(user, req.Password)
}

func (s *AuthService) authenticate(user *models.User, password string) (*models.User, string, *apperrors.Error) {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.Unauthorized("Invalid email or password")
	}
	if !user.IsActive {
		return nil, "", apperrors.Forbidden("Account is inactive")
	}

	token, err := middleware.GenerateToken(s.jwtSecret, user.ID, user.Role)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return user, token, nil
}

// CurrentUser returns the profile behind an authenticated identity.
func (s *AuthService) CurrentUser(ctx context.Context, id primitive.ObjectID) (*models.User, *apperrors.Error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("User not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// ListUsers returns every account. Admin only; passwords never serialize.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, *apperrors.Error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}
