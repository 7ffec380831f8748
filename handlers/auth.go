package handlers

import (
	"errors"
	"net/http"
	"strings"

	"food-order-api/config"
	"food-order-api/middleware"
	"food-order-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Role     models.AccountRole `json:"role" binding:"required"`
	Name     string             `json:"name" binding:"required"`
	Phone    string             `json:"phone" binding:"required"`
	Password string             `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Role     models.AccountRole `json:"role" binding:"required"`
	Phone    string             `json:"phone" binding:"required"`
	Password string             `json:"password" binding:"required"`
}

// Register creates a new account and issues a token
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role. Must be: user or restaurant"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, "Registration failed", err)
		return
	}

	account := models.Account{
		Role:     req.Role,
		Name:     req.Name,
		Phone:    req.Phone,
		Password: string(hash),
	}

	// Phone numbers identify accounts across both roles; the unique index
	// is the arbiter, so concurrent duplicate registrations cannot race
	// past a separate existence check.
	if err := config.DB.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") {
			c.JSON(http.StatusConflict, gin.H{"message": "Phone already registered"})
			return
		}
		internalError(c, "Registration failed", err)
		return
	}

	token, err := middleware.GenerateToken(&account)
	if err != nil {
		internalError(c, "Registration failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"role":    account.Role,
		"account": gin.H{
			"id":    account.ID,
			"name":  account.Name,
			"phone": account.Phone,
			"role":  account.Role,
		},
	})
}

// Login authenticates an account by (phone, role) and returns a token.
// A missing account and a wrong password produce the same response so
// callers cannot probe which phone numbers are registered.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var account models.Account
	if err := config.DB.Where("phone = ? AND role = ?", req.Phone, req.Role).First(&account).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(&account)
	if err != nil {
		internalError(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"role":    account.Role,
	})
}

// GetProfile returns the authenticated account
func GetProfile(c *gin.Context) {
	accountID := middleware.GetAccountID(c)
	var account models.Account
	if err := config.DB.First(&account, accountID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}
