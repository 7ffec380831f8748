package routes

import (
	"food-order-api/handlers"
	"food-order-api/middleware"
	"food-order-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
		public.GET("/meals/public", handlers.ListPublicMeals)
	}

	// ── Authenticated routes (either role) ─────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.GET("/meals", handlers.ListMyMeals)
		auth.GET("/orders/:id", handlers.GetOrderByID)
	}

	// ── Restaurant routes ──────────────────────────────────────────
	restaurant := r.Group("/api")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurant))
	{
		restaurant.POST("/meals", handlers.AddMeal)
		restaurant.GET("/orders", handlers.GetRestaurantOrders)
		restaurant.GET("/orders/status/:status", handlers.GetOrdersByStatus)
		restaurant.PUT("/orders/:id", handlers.UpdateOrderStatus)
	}

	// ── User routes ────────────────────────────────────────────────
	user := r.Group("/api")
	user.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleUser))
	{
		user.POST("/orders", handlers.CreateOrder)
		user.GET("/orders/user", handlers.GetUserOrders)
		user.PUT("/orders/:id/cancel", handlers.CancelOrder)
	}
}
