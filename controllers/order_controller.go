package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashwardhan0703/ecomerce-backend/middleware"
	"github.com/yashwardhan0703/ecomerce-backend/models"
	"github.com/yashwardhan0703/ecomerce-backend/repository"
	"github.com/yashwardhan0703/ecomerce-backend/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Checkout converts the user's cart into an order.
func (oc *OrderController) Checkout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Shipping address and payment method are required")
		return
	}

	order, appErr := oc.orders.Checkout(c.Request.Context(), user, req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"order":   order,
	})
}

// MyOrders returns the authenticated user's orders, newest first.
func (oc *OrderController) MyOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	page, limit := pagination(c)

	orders, total, appErr := oc.orders.GetUserOrders(c.Request.Context(), user, page, limit)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
		"meta":    paginationMeta(len(orders), total, page, limit),
	})
}

// GetOrder returns one order, visible to its owner or an admin.
func (oc *OrderController) GetOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	order, appErr := oc.orders.GetOrder(c.Request.Context(), user, middleware.GetUserRole(c), id)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// CancelOrder cancels an unshipped order and restores its stock.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	order, appErr := oc.orders.CancelOrder(c.Request.Context(), user, id)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order cancelled successfully",
		"order":   order,
	})
}

// ListAllOrders returns orders across all users with optional status
// filters. Admin only.
func (oc *OrderController) ListAllOrders(c *gin.Context) {
	page, limit := pagination(c)
	filter := repository.OrderFilter{
		OrderStatus:   c.Query("orderStatus"),
		PaymentStatus: c.Query("paymentStatus"),
	}

	orders, total, appErr := oc.orders.GetAllOrders(c.Request.Context(), filter, page, limit)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
		"meta":    paginationMeta(len(orders), total, page, limit),
	})
}

// UpdateOrderStatus applies fulfillment updates. Admin only.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := objectID(c, c.Param("id"))
	if !ok {
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload")
		return
	}

	order, appErr := oc.orders.UpdateStatus(c.Request.Context(), id, req)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated",
		"order":   order,
	})
}
