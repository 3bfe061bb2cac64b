package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	apperrors "github.com/yashwardhan0703/ecomerce-backend/errors"
	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/repository"
)

// Checkout pricing rules.
const (
	FreeShippingThreshold = 100.0
	FlatShippingFee       = 10.0
	TaxRate               = 0.08
)

// OrderService turns carts into immutable orders and manages the order
// lifecycle. Checkout runs as a saga: each variation's stock decrement is an
// atomic decrement-if-sufficient, and any failure after the first decrement
// triggers compensating restores before the error is returned.
type OrderService struct {
	orders   repository.OrderRepository
	carts    repository.CartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, products repository.ProductRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, carts: carts, products: products, logger: logger}
}

// decrementedLine tracks a stock decrement that may need compensation.
type decrementedLine struct {
	product  primitive.ObjectID
	size     string
	quantity int
}

// Checkout converts the user's cart into an order. Unit prices are taken from
// each variation's current price, not the cart's snapshot. The cart is cleared
// only after the order is durably created.
func (s *OrderService) Checkout(ctx context.Context, user primitive.ObjectID, req models.CreateOrderRequest) (*models.Order, *apperrors.Error) {
	cart, err := s.carts.FindByUser(ctx, user)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && len(cart.Items) == 0) {
		return nil, apperrors.BadRequest("Cart is empty")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	var decremented []decrementedLine

	for _, line := range cart.Items {
		product, err := s.products.FindByID(ctx, line.Product)
		if errors.Is(err, repository.ErrNotFound) {
			s.compensate(ctx, decremented)
			return nil, apperrors.NotFound("Product no longer available")
		}
		if err != nil {
			s.compensate(ctx, decremented)
			return nil, apperrors.Internal(err)
		}

		variation := product.Variation(line.Size)
		if variation == nil {
			s.compensate(ctx, decremented)
			return nil, apperrors.BadRequest(fmt.Sprintf("Size %s not available for %s", line.Size, product.Name))
		}

		if err := s.products.DecrementStock(ctx, line.Product, line.Size, line.Quantity); err != nil {
			s.compensate(ctx, decremented)
			if errors.Is(err, repository.ErrInsufficientStock) {
				return nil, apperrors.InsufficientStock(fmt.Sprintf("Insufficient stock for %s (%s)", product.Name, line.Size))
			}
			return nil, apperrors.Internal(err)
		}
		decremented = append(decremented, decrementedLine{product: line.Product, size: line.Size, quantity: line.Quantity})

		orderItems = append(orderItems, models.OrderItem{
			Product:  line.Product,
			Size:     line.Size,
			Quantity: line.Quantity,
			Price:    variation.Price,
			Total:    variation.Price * float64(line.Quantity),
		})
	}

	subtotal := 0.0
	for _, item := range orderItems {
		subtotal += item.Total
	}
	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * TaxRate

	order := &models.Order{
		User:            user,
		Items:           orderItems,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Subtotal:        subtotal,
		ShippingCost:    shipping,
		TaxAmount:       tax,
		TotalAmount:     subtotal + shipping + tax,
		OrderStatus:     models.OrderPending,
		PaymentStatus:   models.PaymentPending,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.compensate(ctx, decremented)
		s.logger.Error("Failed to create order", zap.Error(err), zap.String("user_id", user.Hex()))
		return nil, apperrors.Internal(err)
	}

	cart.Items = []models.CartItem{}
	if err := s.carts.Save(ctx, cart); err != nil {
		// The order exists; a stale cart is recoverable and must not fail
		// the checkout.
		s.logger.Error("Failed to clear cart after checkout",
			zap.Error(err),
			zap.String("order_id", order.ID.Hex()),
			zap.String("user_id", user.Hex()))
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.Hex()),
		zap.String("user_id", user.Hex()),
		zap.Float64("total", order.TotalAmount))
	return order, nil
}

// compensate restores stock for every decrement already applied in a failed
// checkout, newest first.
func (s *OrderService) compensate(ctx context.Context, decremented []decrementedLine) {
	for i := len(decremented) - 1; i >= 0; i-- {
		d := decremented[i]
		if err := s.products.IncrementStock(ctx, d.product, d.size, d.quantity); err != nil {
			s.logger.Error("Failed to restore stock during checkout compensation",
				zap.Error(err),
				zap.String("product_id", d.product.Hex()),
				zap.String("size", d.size),
				zap.Int("quantity", d.quantity))
		}
	}
}

// GetUserOrders returns the user's orders, newest first, paginated.
func (s *OrderService) GetUserOrders(ctx context.Context, user primitive.ObjectID, page, limit int) ([]models.Order, int64, *apperrors.Error) {
	orders, total, err := s.orders.FindByUser(ctx, user, page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	return orders, total, nil
}

// GetOrder returns an order visible to its owner or to an admin.
func (s *OrderService) GetOrder(ctx context.Context, user primitive.ObjectID, role string, orderID primitive.ObjectID) (*models.Order, *apperrors.Error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Order not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if order.User != user && role != models.RoleAdmin {
		return nil, apperrors.Forbidden("Access denied")
	}
	return order, nil
}

// GetAllOrders returns orders across all users, optionally filtered by
// status. Admin only.
func (s *OrderService) GetAllOrders(ctx context.Context, filter repository.OrderFilter, page, limit int) ([]models.Order, int64, *apperrors.Error) {
	orders, total, err := s.orders.FindAll(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	return orders, total, nil
}

// UpdateStatus applies fulfillment updates to an order. Admin only.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, req models.UpdateOrderStatusRequest) (*models.Order, *apperrors.Error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Order not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if req.OrderStatus != "" {
		order.OrderStatus = req.OrderStatus
	}
	if req.PaymentStatus != "" {
		order.PaymentStatus = req.PaymentStatus
	}
	if req.TrackingNumber != "" {
		order.TrackingNumber = req.TrackingNumber
	}
	if req.EstimatedDelivery != "" {
		t, e := parseDate(req.EstimatedDelivery)
		if e != nil {
			return nil, apperrors.BadRequest("Invalid estimated delivery date")
		}
		order.EstimatedDelivery = &t
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.Internal(err)
	}
	return order, nil
}

// CancelOrder cancels an order for its owner while it has not shipped.
// Stock restoration is a compensating action, best-effort per line: a
// variation removed from the catalog since the order was placed is skipped.
func (s *OrderService) CancelOrder(ctx context.Context, user, orderID primitive.ObjectID) (*models.Order, *apperrors.Error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("Order not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if order.User != user {
		return nil, apperrors.Forbidden("Access denied")
	}

	switch order.OrderStatus {
	case models.OrderShipped, models.OrderDelivered, models.OrderCancelled:
		return nil, apperrors.InvalidState("Order cannot be cancelled at this stage")
	}

	for _, item := range order.Items {
		err := s.products.IncrementStock(ctx, item.Product, item.Size, item.Quantity)
		if errors.Is(err, repository.ErrNotFound) {
			// Variation or product removed since the order was placed.
			continue
		}
		if err != nil {
			s.logger.Error("Failed to restore stock on cancellation",
				zap.Error(err),
				zap.String("order_id", orderID.Hex()),
				zap.String("product_id", item.Product.Hex()))
		}
	}

	order.OrderStatus = models.OrderCancelled
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("Order cancelled",
		zap.String("order_id", orderID.Hex()),
		zap.String("user_id", user.Hex()))
	return order, nil
}

// TotalPages computes page count for meta blocks.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pages
}
