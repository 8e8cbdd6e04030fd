package models

import "gorm.io/gorm"

// User represents a marketplace account. A user owns their product listings,
// exactly one cart and an append-only order history.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Username   string `json:"username" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
