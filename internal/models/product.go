package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a listing in the catalog. Only its owner may update or delete it.
// Price is authoritative here at listing time; checkout copies it by value
// into order lines, so later edits never touch past orders.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OwnerID     string          `json:"owner_id" gorm:"index;type:varchar(36)" validate:"required"`
	Title       string          `json:"title" validate:"required,min=1,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Category    string          `json:"category" validate:"omitempty,max=100"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	ImageURL    string          `json:"image_url" validate:"omitempty,max=500"`
	gorm.Model
}
