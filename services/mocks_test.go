package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/repository"
)

// --- Mock repositories ---

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmailAndRole(ctx context.Context, email, role string) (*models.User, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	if args.Error(0) == nil && category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockCategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepo) FindActive(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepo) Save(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSubcategoryRepo struct {
	mock.Mock
}

func (m *MockSubcategoryRepo) Create(ctx context.Context, sub *models.Subcategory) error {
	args := m.Called(ctx, sub)
	if args.Error(0) == nil && sub.ID.IsZero() {
		sub.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockSubcategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Subcategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subcategory), args.Error(1)
}

func (m *MockSubcategoryRepo) FindByNameAndCategory(ctx context.Context, name string, category primitive.ObjectID) (*models.Subcategory, error) {
	args := m.Called(ctx, name, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subcategory), args.Error(1)
}

func (m *MockSubcategoryRepo) FindActive(ctx context.Context) ([]models.Subcategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subcategory), args.Error(1)
}

func (m *MockSubcategoryRepo) FindByCategory(ctx context.Context, category primitive.ObjectID) ([]models.Subcategory, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subcategory), args.Error(1)
}

func (m *MockSubcategoryRepo) CountByCategory(ctx context.Context, category primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubcategoryRepo) Save(ctx context.Context, sub *models.Subcategory) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubcategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	if args.Error(0) == nil && product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepo) Find(ctx context.Context, filter repository.ProductFilter, page, limit int) ([]models.Product, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepo) FindBySubcategory(ctx context.Context, subcategory primitive.ObjectID) ([]models.Product, error) {
	args := m.Called(ctx, subcategory)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepo) FindDeals(ctx context.Context, now time.Time, page, limit int) ([]models.Product, int64, error) {
	args := m.Called(ctx, now, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepo) FindBanners(ctx context.Context, page, limit int) ([]models.Product, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepo) Save(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepo) DecrementStock(ctx context.Context, id primitive.ObjectID, size string, quantity int) error {
	args := m.Called(ctx, id, size, quantity)
	return args.Error(0)
}

func (m *MockProductRepo) IncrementStock(ctx context.Context, id primitive.ObjectID, size string, quantity int) error {
	args := m.Called(ctx, id, size, quantity)
	return args.Error(0)
}

// MockCartRepo mirrors the store contract: Save recomputes the total.
type MockCartRepo struct {
	mock.Mock
}

func (m *MockCartRepo) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Cart, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepo) Save(ctx context.Context, cart *models.Cart) error {
	cart.RecalculateTotal()
	args := m.Called(ctx, cart)
	return args.Error(0)
}

type MockWishlistRepo struct {
	mock.Mock
}

func (m *MockWishlistRepo) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Wishlist, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wishlist), args.Error(1)
}

func (m *MockWishlistRepo) Save(ctx context.Context, wishlist *models.Wishlist) error {
	args := m.Called(ctx, wishlist)
	return args.Error(0)
}

type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	if args.Error(0) == nil && order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockOrderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepo) FindByUser(ctx context.Context, user primitive.ObjectID, page, limit int) ([]models.Order, int64, error) {
	args := m.Called(ctx, user, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepo) FindAll(ctx context.Context, filter repository.OrderFilter, page, limit int) ([]models.Order, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepo) Save(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type MockNewsletterRepo struct {
	mock.Mock
}

func (m *MockNewsletterRepo) Create(ctx context.Context, newsletter *models.Newsletter) error {
	args := m.Called(ctx, newsletter)
	if args.Error(0) == nil && newsletter.ID.IsZero() {
		newsletter.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockNewsletterRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Newsletter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Newsletter), args.Error(1)
}

func (m *MockNewsletterRepo) FindActive(ctx context.Context) ([]models.Newsletter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Newsletter), args.Error(1)
}

func (m *MockNewsletterRepo) Save(ctx context.Context, newsletter *models.Newsletter) error {
	args := m.Called(ctx, newsletter)
	return args.Error(0)
}
