package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"ecofinds/internal/apperrors"
	"ecofinds/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository. It
// shares the cart repository so CreateFromCart can drain the cart under its
// own lock, mimicking the transactional boundary of the GORM implementation.
type MockOrderRepository struct {
	orders map[string]models.Order
	cart   *MockCartRepository
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository(cart *MockCartRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
		cart:   cart,
	}
}

// GetByUser returns a user's orders, newest first.
func (r *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			orderList = append(orderList, order)
		}
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &order, nil
}

// CreateFromCart converts the user's cart into an order. The whole operation
// runs under the repository lock so two racing checkouts are serialized and
// the second one observes an empty cart.
func (r *MockOrderRepository) CreateFromCart(userID string, build BuildOrderFunc) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines, err := r.cart.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperrors.ErrEmptyCart
	}
	for _, line := range lines {
		if line.Product.ID == "" {
			return nil, fmt.Errorf("product %s for cart line %s is no longer listed: %w",
				line.ProductID, line.ID, apperrors.ErrNotFound)
		}
	}

	order, err := build(lines)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	for i := range order.Lines {
		if order.Lines[i].ID == "" {
			order.Lines[i].ID = uuid.New().String()
		}
		order.Lines[i].OrderID = order.ID
	}

	r.orders[order.ID] = *order
	r.cart.deleteByUser(userID)
	return order, nil
}
