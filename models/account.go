package models

import "time"

// AccountRole defines the two identity kinds in the system
type AccountRole string

const (
	RoleUser       AccountRole = "user"
	RoleRestaurant AccountRole = "restaurant"
)

// ValidRole reports whether r is one of the recognized roles.
func ValidRole(r AccountRole) bool {
	return r == RoleUser || r == RoleRestaurant
}

type Account struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Role      AccountRole `json:"role" gorm:"not null"`
	Name      string      `json:"name" gorm:"not null"`
	Phone     string      `json:"phone" gorm:"uniqueIndex;not null"`
	Password  string      `json:"-" gorm:"not null"` // bcrypt hash, never the plaintext
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
