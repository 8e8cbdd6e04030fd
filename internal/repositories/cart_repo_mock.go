package repositories

import (
	"fmt"
	"sync"

	"ecofinds/internal/apperrors"
	"ecofinds/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository. It
// resolves product snapshots through the product repository it was built
// with, the way the GORM implementation preloads them.
type MockCartRepository struct {
	lines    map[string]models.CartLine
	products *MockProductRepository
	mu       sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository(products *MockProductRepository) *MockCartRepository {
	return &MockCartRepository{
		lines:    make(map[string]models.CartLine),
		products: products,
	}
}

// GetByUser returns all cart lines for a user with product snapshots filled.
func (r *MockCartRepository) GetByUser(userID string) ([]models.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lineList := make([]models.CartLine, 0)
	for _, line := range r.lines {
		if line.UserID != userID {
			continue
		}
		if product, err := r.products.GetByID(line.ProductID); err == nil {
			line.Product = *product
		}
		lineList = append(lineList, line)
	}
	return lineList, nil
}

// GetByID returns a cart line by its ID.
func (r *MockCartRepository) GetByID(id string) (*models.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	line, ok := r.lines[id]
	if !ok {
		return nil, fmt.Errorf("cart line with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &line, nil
}

// Create adds a new cart line. Only the reference is stored; the product
// snapshot is resolved on every read, so a delisted product surfaces as a
// zero snapshot exactly as it does under GORM's Preload.
func (r *MockCartRepository) Create(line *models.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	stored := *line
	stored.Product = models.Product{}
	r.lines[line.ID] = stored
	return nil
}

// Delete removes a cart line by its ID.
func (r *MockCartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.lines[id]
	if !ok {
		return fmt.Errorf("cart line with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.lines, id)
	return nil
}

// deleteByUser drains a user's cart. Only the mock order repository calls
// this, as the tail end of its simulated checkout transaction.
func (r *MockCartRepository) deleteByUser(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, line := range r.lines {
		if line.UserID == userID {
			delete(r.lines, id)
		}
	}
}
