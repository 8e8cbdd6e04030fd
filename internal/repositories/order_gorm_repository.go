package repositories

import (
	"errors"
	"fmt"

	"ecofinds/internal/apperrors"
	"ecofinds/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetByUser retrieves a user's orders with their lines, newest first.
func (r *GORMOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Lines").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its lines.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Lines").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// CreateFromCart converts a user's cart into an order inside a single
// transaction: lock and read the cart lines, build the order, insert it with
// its lines and drain the cart. Two racing checkouts for the same user are
// serialized on the row locks; the second one sees an empty cart.
func (r *GORMOrderRepository) CreateFromCart(userID string, build BuildOrderFunc) (*models.Order, error) {
	var order *models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		read := tx.Preload("Product")
		if tx.Dialector.Name() != "sqlite" {
			// SQLite has no SELECT ... FOR UPDATE; its single-writer lock
			// already serializes the transaction.
			read = read.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var lines []models.CartLine
		if err := read.Where("user_id = ?", userID).Find(&lines).Error; err != nil {
			return fmt.Errorf("failed to read cart for user %s: %w", userID, err)
		}
		if len(lines) == 0 {
			return apperrors.ErrEmptyCart
		}
		for _, line := range lines {
			// Preload skips delisted products, leaving a zero snapshot.
			// Such a line must never be priced into an order.
			if line.Product.ID == "" {
				return fmt.Errorf("product %s for cart line %s is no longer listed: %w",
					line.ProductID, line.ID, apperrors.ErrNotFound)
			}
		}

		built, err := build(lines)
		if err != nil {
			return err
		}
		if built.ID == "" {
			built.ID = uuid.New().String()
		}
		for i := range built.Lines {
			if built.Lines[i].ID == "" {
				built.Lines[i].ID = uuid.New().String()
			}
			built.Lines[i].OrderID = built.ID
		}

		if err := tx.Create(built).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
		}

		order = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
