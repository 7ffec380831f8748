package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusReady      OrderStatus = "ready"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	MealID uint `json:"meal_id" gorm:"not null"`
	Meal   Meal `json:"meal,omitempty" gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`

	// RestaurantID is copied from the meal when the order is created and
	// never changes afterwards.
	RestaurantID uint    `json:"restaurant_id" gorm:"not null"`
	Restaurant   Account `json:"-" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`

	UserID uint    `json:"user_id" gorm:"not null"`
	User   Account `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Status    OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
