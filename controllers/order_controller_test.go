package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/yashwardhan0703/ecomerce-backend/middleware"
	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/repository"
	"github.com/yashwardhan0703/ecomerce-backend/services"
)

// --- Mock repositories ---

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	if args.Error(0) == nil && order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *mockOrderRepo) FindByUser(ctx context.Context, user primitive.ObjectID, page, limit int) ([]models.Order, int64, error) {
	args := m.Called(ctx, user, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepo) FindAll(ctx context.Context, filter repository.OrderFilter, page, limit int) ([]models.Order, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepo) Save(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Cart, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *mockCartRepo) Save(ctx context.Context, cart *models.Cart) error {
	cart.RecalculateTotal()
	args := m.Called(ctx, cart)
	return args.Error(0)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductRepo) Find(ctx context.Context, filter repository.ProductFilter, page, limit int) ([]models.Product, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) FindBySubcategory(ctx context.Context, subcategory primitive.ObjectID) ([]models.Product, error) {
	args := m.Called(ctx, subcategory)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductRepo) FindDeals(ctx context.Context, now time.Time, page, limit int) ([]models.Product, int64, error) {
	args := m.Called(ctx, now, page, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) FindBanners(ctx context.Context, page, limit int) ([]models.Product, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) Save(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) DecrementStock(ctx context.Context, id primitive.ObjectID, size string, quantity int) error {
	args := m.Called(ctx, id, size, quantity)
	return args.Error(0)
}

func (m *mockProductRepo) IncrementStock(ctx context.Context, id primitive.ObjectID, size string, quantity int) error {
	args := m.Called(ctx, id, size, quantity)
	return args.Error(0)
}

// injectIdentity stands in for RequireAuth in handler tests.
func injectIdentity(user primitive.ObjectID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserContextKey, user)
		c.Set(middleware.RoleContextKey, role)
		c.Next()
	}
}

const checkoutPayload = `{
	"shippingAddress": {
		"street": "1 Main St",
		"city": "Springfield",
		"state": "IL",
		"postalCode": "62701",
		"country": "US"
	},
	"paymentMethod": "card"
}`

func TestCheckoutHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	user := primitive.NewObjectID()

	t.Run("201 on success", func(t *testing.T) {
		orders := new(mockOrderRepo)
		carts := new(mockCartRepo)
		products := new(mockProductRepo)
		svc := services.NewOrderService(orders, carts, products, zap.NewNop())
		controller := NewOrderController(svc)

		product := &models.Product{
			ID:         primitive.NewObjectID(),
			Name:       "Basic Tee",
			Variations: []models.Variation{{Size: "M", Price: 25, Stock: 10}},
		}
		cart := &models.Cart{
			ID:    primitive.NewObjectID(),
			User:  user,
			Items: []models.CartItem{{Product: product.ID, Size: "M", Quantity: 2, Price: 25}},
		}

		carts.On("FindByUser", mock.Anything, user).Return(cart, nil).Once()
		products.On("FindByID", mock.Anything, product.ID).Return(product, nil).Once()
		products.On("DecrementStock", mock.Anything, product.ID, "M", 2).Return(nil).Once()
		orders.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		carts.On("Save", mock.Anything, cart).Return(nil).Once()

		r := gin.New()
		r.POST("/orders", injectIdentity(user, models.RoleUser), controller.Checkout)

		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(checkoutPayload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Order placed successfully")
		orders.AssertExpectations(t)
	})

	t.Run("400 on empty cart", func(t *testing.T) {
		orders := new(mockOrderRepo)
		carts := new(mockCartRepo)
		products := new(mockProductRepo)
		svc := services.NewOrderService(orders, carts, products, zap.NewNop())
		controller := NewOrderController(svc)

		carts.On("FindByUser", mock.Anything, user).Return(nil, repository.ErrNotFound).Once()

		r := gin.New()
		r.POST("/orders", injectIdentity(user, models.RoleUser), controller.Checkout)

		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(checkoutPayload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Cart is empty")
	})

	t.Run("400 on missing shipping address", func(t *testing.T) {
		svc := services.NewOrderService(new(mockOrderRepo), new(mockCartRepo), new(mockProductRepo), zap.NewNop())
		controller := NewOrderController(svc)

		r := gin.New()
		r.POST("/orders", injectIdentity(user, models.RoleUser), controller.Checkout)

		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{"paymentMethod":"card"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetOrderHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	orders := new(mockOrderRepo)
	svc := services.NewOrderService(orders, new(mockCartRepo), new(mockProductRepo), zap.NewNop())
	controller := NewOrderController(svc)

	order := &models.Order{ID: primitive.NewObjectID(), User: owner, OrderStatus: models.OrderPending}
	orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	t.Run("owner sees the order", func(t *testing.T) {
		r := gin.New()
		r.GET("/orders/:id", injectIdentity(owner, models.RoleUser), controller.GetOrder)

		req, _ := http.NewRequest(http.MethodGet, "/orders/"+order.ID.Hex(), nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stranger gets 403", func(t *testing.T) {
		r := gin.New()
		r.GET("/orders/:id", injectIdentity(stranger, models.RoleUser), controller.GetOrder)

		req, _ := http.NewRequest(http.MethodGet, "/orders/"+order.ID.Hex(), nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access denied")
	})

	t.Run("malformed id gets 400", func(t *testing.T) {
		r := gin.New()
		r.GET("/orders/:id", injectIdentity(owner, models.RoleUser), controller.GetOrder)

		req, _ := http.NewRequest(http.MethodGet, "/orders/not-an-id", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid ID format")
	})
}
