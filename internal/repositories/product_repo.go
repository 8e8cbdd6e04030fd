package repositories

import "ecofinds/internal/models"

// SearchFilter narrows a catalog listing. The zero value matches everything.
type SearchFilter struct {
	// Query is matched case-insensitively as a substring of title,
	// description or category.
	Query string
	// Category is a case-insensitive exact match, combined with Query when
	// both are set.
	Category string
}

// ProductRepository defines the interface for product data access. Results
// are ordered newest first.
type ProductRepository interface {
	Search(filter SearchFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByOwner(ownerID string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
