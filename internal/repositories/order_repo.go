package repositories

import "ecofinds/internal/models"

// BuildOrderFunc assembles the order to persist from the cart lines read
// inside the checkout transaction. The lines carry their current product
// snapshots; returning an error aborts the transaction without side effects.
type BuildOrderFunc func(lines []models.CartLine) (*models.Order, error)

// OrderRepository defines the interface for order data access. Orders are
// append-only; there is no update or delete.
type OrderRepository interface {
	GetByUser(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	// CreateFromCart reads the user's cart lines, hands them to build,
	// persists the resulting order with its lines and drains the cart as one
	// atomic unit. An empty cart yields apperrors.ErrEmptyCart; any failure
	// leaves both the cart and the order history untouched.
	CreateFromCart(userID string, build BuildOrderFunc) (*models.Order, error)
}
