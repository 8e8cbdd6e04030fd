package models

import "gorm.io/gorm"

// CartLine is one (product, quantity) pairing in a user's cart. Repeated adds
// of the same product create separate lines; there is no merge rule.
type CartLine struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string `json:"user_id" gorm:"index;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
	// Product is the current catalog snapshot, loaded for cart listings and
	// read at checkout to price the line.
	Product Product `json:"product"`
	gorm.Model
}
