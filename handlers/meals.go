package handlers

import (
	"net/http"

	"food-order-api/config"
	"food-order-api/middleware"
	"food-order-api/models"

	"github.com/gin-gonic/gin"
)

type AddMealRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
}

// PublicMeal is a meal joined with its owning restaurant's display name.
type PublicMeal struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	RestaurantName string  `json:"restaurant_name"`
}

// ListMyMeals returns the meals owned by the calling account
func ListMyMeals(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	var meals []models.Meal
	if err := config.DB.Where("restaurant_id = ?", accountID).Find(&meals).Error; err != nil {
		internalError(c, "Failed to fetch meals", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}

// AddMeal inserts a meal owned by the calling restaurant
func AddMeal(c *gin.Context) {
	restaurantID := middleware.GetAccountID(c)

	var req AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	meal := models.Meal{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Price:        req.Price,
	}
	if err := config.DB.Create(&meal).Error; err != nil {
		internalError(c, "Failed to add meal", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Meal added successfully", "meal": meal})
}

// ListPublicMeals returns every meal with its restaurant's name — no auth
func ListPublicMeals(c *gin.Context) {
	var meals []PublicMeal
	err := config.DB.Table("meals").
		Select("meals.id, meals.name, meals.price, accounts.name AS restaurant_name").
		Joins("JOIN accounts ON accounts.id = meals.restaurant_id").
		Scan(&meals).Error
	if err != nil {
		internalError(c, "Failed to fetch meals", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}
