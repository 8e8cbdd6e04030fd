package repositories

import "ecofinds/internal/models"

// CartRepository defines the interface for cart line data access. Lines
// returned by GetByUser carry the current Product snapshot. Draining a whole
// cart is deliberately absent here: it only happens inside the checkout
// transaction owned by OrderRepository.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartLine, error)
	GetByID(id string) (*models.CartLine, error)
	Create(line *models.CartLine) error
	Delete(id string) error
}
