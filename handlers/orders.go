package handlers

import (
	"fmt"
	"net/http"
	"time"

	"food-order-api/config"
	"food-order-api/middleware"
	"food-order-api/models"
	"food-order-api/statemachine"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	MealID uint `json:"meal_id"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// restaurantOrderRow holds an order joined with its meal and customer,
// as read for the restaurant-facing listings.
type restaurantOrderRow struct {
	ID            uint
	Status        models.OrderStatus
	CreatedAt     time.Time
	MealName      string
	MealPrice     float64
	CustomerName  string
	CustomerPhone string
}

// userOrderRow holds an order joined with its meal and restaurant.
type userOrderRow struct {
	ID              uint
	Status          models.OrderStatus
	CreatedAt       time.Time
	MealName        string
	MealPrice       float64
	RestaurantName  string
	RestaurantPhone string
}

// orderDetailRow is the left-joined single-order read: missing related
// rows must not exclude the order itself.
type orderDetailRow struct {
	ID              uint
	MealID          uint
	RestaurantID    uint
	UserID          uint
	Status          models.OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
	MealName        string
	UnitPrice       float64
	CustomerName    string
	CustomerPhone   string
	RestaurantName  string
	RestaurantPhone string
}

// CreateOrder places an order for a meal. The order's restaurant is copied
// from the meal at creation time.
func CreateOrder(c *gin.Context) {
	userID := middleware.GetAccountID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MealID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Meal ID is required"})
		return
	}

	var meal models.Meal
	if err := config.DB.First(&meal, req.MealID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
		return
	}

	order := models.Order{
		MealID:       meal.ID,
		RestaurantID: meal.RestaurantID,
		UserID:       userID,
		Status:       models.StatusPending,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		internalError(c, "Order failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Order placed successfully",
		"order_id": order.ID,
	})
}

// GetRestaurantOrders returns every order for the calling restaurant,
// newest first
func GetRestaurantOrders(c *gin.Context) {
	restaurantID := middleware.GetAccountID(c)

	var rows []restaurantOrderRow
	err := config.DB.Table("orders").
		Select(`orders.id, orders.status, orders.created_at,
			meals.name AS meal_name, meals.price AS meal_price,
			accounts.name AS customer_name, accounts.phone AS customer_phone`).
		Joins("JOIN meals ON meals.id = orders.meal_id").
		Joins("JOIN accounts ON accounts.id = orders.user_id").
		Where("orders.restaurant_id = ?", restaurantID).
		Order("orders.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		internalError(c, "Failed to fetch orders", err)
		return
	}

	orders := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, gin.H{
			"id":          r.ID,
			"status":      r.Status,
			"total_price": r.MealPrice,
			"created_at":  r.CreatedAt,
			"meal":        gin.H{"name": r.MealName},
			"customer":    gin.H{"name": r.CustomerName, "phone": r.CustomerPhone},
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// GetUserOrders returns the calling user's orders, newest first
func GetUserOrders(c *gin.Context) {
	userID := middleware.GetAccountID(c)

	var rows []userOrderRow
	err := config.DB.Table("orders").
		Select(`orders.id, orders.status, orders.created_at,
			meals.name AS meal_name, meals.price AS meal_price,
			accounts.name AS restaurant_name, accounts.phone AS restaurant_phone`).
		Joins("JOIN meals ON meals.id = orders.meal_id").
		Joins("JOIN accounts ON accounts.id = orders.restaurant_id").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		internalError(c, "Failed to fetch your orders", err)
		return
	}

	orders := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, gin.H{
			"id":         r.ID,
			"status":     r.Status,
			"created_at": r.CreatedAt,
			"meal":       gin.H{"name": r.MealName, "price": r.MealPrice},
			"restaurant": gin.H{"name": r.RestaurantName, "phone": r.RestaurantPhone},
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// GetOrderByID returns one order with full detail. Users see the
// restaurant block, restaurants see the customer block.
func GetOrderByID(c *gin.Context) {
	accountID := middleware.GetAccountID(c)
	role := middleware.GetRole(c)

	var row orderDetailRow
	result := config.DB.Table("orders").
		Select(`orders.id, orders.meal_id, orders.restaurant_id, orders.user_id,
			orders.status, orders.created_at, orders.updated_at,
			meals.name AS meal_name, meals.price AS unit_price,
			customer.name AS customer_name, customer.phone AS customer_phone,
			restaurant.name AS restaurant_name, restaurant.phone AS restaurant_phone`).
		Joins("LEFT JOIN meals ON meals.id = orders.meal_id").
		Joins("LEFT JOIN accounts AS customer ON customer.id = orders.user_id").
		Joins("LEFT JOIN accounts AS restaurant ON restaurant.id = orders.restaurant_id").
		Where("orders.id = ?", c.Param("id")).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		internalError(c, "Failed to fetch order details", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	switch role {
	case models.RoleUser:
		if row.UserID != accountID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
	case models.RoleRestaurant:
		if row.RestaurantID != accountID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}

	order := gin.H{
		"id":         row.ID,
		"status":     row.Status,
		"created_at": row.CreatedAt,
		"updated_at": row.UpdatedAt,
		"meal": gin.H{
			"id":         row.MealID,
			"name":       row.MealName,
			"unit_price": row.UnitPrice,
		},
	}
	if role == models.RoleRestaurant {
		order["customer"] = gin.H{"name": row.CustomerName, "phone": row.CustomerPhone}
	}
	if role == models.RoleUser {
		order["restaurant"] = gin.H{"name": row.RestaurantName, "phone": row.RestaurantPhone}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// GetOrdersByStatus returns the calling restaurant's orders in one status,
// oldest first
func GetOrdersByStatus(c *gin.Context) {
	restaurantID := middleware.GetAccountID(c)

	status := models.OrderStatus(c.Param("status"))
	if !statemachine.IsValid(status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid status. Must be one of: " + statemachine.StatusNames(),
		})
		return
	}

	var rows []restaurantOrderRow
	err := config.DB.Table("orders").
		Select(`orders.id, orders.status, orders.created_at,
			meals.name AS meal_name, meals.price AS meal_price,
			accounts.name AS customer_name, accounts.phone AS customer_phone`).
		Joins("JOIN meals ON meals.id = orders.meal_id").
		Joins("JOIN accounts ON accounts.id = orders.user_id").
		Where("orders.restaurant_id = ? AND orders.status = ?", restaurantID, status).
		Order("orders.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		internalError(c, "Failed to fetch orders", err)
		return
	}

	orders := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, gin.H{
			"id":             r.ID,
			"total_price":    r.MealPrice,
			"created_at":     r.CreatedAt,
			"meal_name":      r.MealName,
			"customer_name":  r.CustomerName,
			"customer_phone": r.CustomerPhone,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  status,
		"count":   len(orders),
		"orders":  orders,
	})
}

// UpdateOrderStatus moves one of the calling restaurant's orders along the
// status lifecycle. The write is a single conditional UPDATE keyed on the
// status that was read, so a concurrent update cannot be silently
// overwritten.
func UpdateOrderStatus(c *gin.Context) {
	restaurantID := middleware.GetAccountID(c)
	orderID := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !statemachine.IsValid(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid status. Must be one of: " + statemachine.StatusNames(),
		})
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ? AND restaurant_id = ?", orderID, restaurantID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found or you don't have permission to update it"})
		return
	}

	if statemachine.IsTerminal(order.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("Cannot update an order that is already %s", order.Status),
		})
		return
	}

	if err := statemachine.CanAdvance(order.Status, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":             "Invalid status transition",
			"reason":              err.Error(),
			"current_status":      order.Status,
			"valid_next_statuses": statemachine.NextStatuses(order.Status),
		})
		return
	}

	result := config.DB.Model(&models.Order{}).
		Where("id = ? AND restaurant_id = ? AND status = ?", order.ID, restaurantID, order.Status).
		Update("status", req.Status)
	if result.Error != nil {
		internalError(c, "Failed to update order status", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Order was updated concurrently, please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    fmt.Sprintf("Order status updated to %s", req.Status),
		"order_id":   order.ID,
		"new_status": req.Status,
	})
}

// CancelOrder lets a user cancel their own order while it is still pending
func CancelOrder(c *gin.Context) {
	userID := middleware.GetAccountID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found or you don't have permission to cancel it"})
		return
	}

	if err := statemachine.CanCancel(order.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("Cannot cancel order. Current status is: %s", order.Status),
		})
		return
	}

	result := config.DB.Model(&models.Order{}).
		Where("id = ? AND user_id = ? AND status = ?", order.ID, userID, models.StatusPending).
		Update("status", models.StatusCancelled)
	if result.Error != nil {
		internalError(c, "Failed to cancel order", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Order was updated concurrently, please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Order cancelled successfully",
		"order_id": order.ID,
	})
}
