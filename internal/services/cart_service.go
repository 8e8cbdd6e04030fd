package services

import (
	"ecofinds/internal/models"
	"ecofinds/internal/repositories"
)

// CartService handles business logic for the mutable per-user cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// List returns the user's cart lines joined with their product snapshots.
func (s *CartService) List(userID string) ([]models.CartLine, error) {
	return s.cartRepo.GetByUser(userID)
}

// Add inserts a new cart line. Repeated adds of the same product produce
// separate lines; a missing or non-positive quantity is coerced to 1.
func (s *CartService) Add(userID, productID string, quantity int) (*models.CartLine, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		quantity = 1
	}

	line := &models.CartLine{
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   *product,
	}
	if err := s.cartRepo.Create(line); err != nil {
		return nil, err
	}
	return line, nil
}

// Remove deletes a single cart line after the ownership check.
func (s *CartService) Remove(userID, lineID string) error {
	line, err := s.cartRepo.GetByID(lineID)
	if err != nil {
		return err
	}
	if err := authorize(userID, line.UserID); err != nil {
		return err
	}
	return s.cartRepo.Delete(lineID)
}
