package services

import (
	"fmt"

	"ecofinds/internal/apperrors"
	"ecofinds/internal/models"
	"ecofinds/internal/repositories"

	"github.com/shopspring/decimal"
)

// ProductService handles business logic for the catalog: listing products,
// searching them and guarding mutations so only the owner may change or
// remove a listing.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ProductUpdate carries the optional fields of a product edit. A nil field
// keeps the current value.
type ProductUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
	ImageURL    *string
}

// Search retrieves catalog products matching the filter, newest first.
func (s *ProductService) Search(filter repositories.SearchFilter) ([]models.Product, error) {
	return s.repo.Search(filter)
}

// GetByID retrieves a single product by its ID.
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// ListByOwner retrieves the requesting user's own listings.
func (s *ProductService) ListByOwner(ownerID string) ([]models.Product, error) {
	return s.repo.GetByOwner(ownerID)
}

// Create lists a new product owned by userID.
func (s *ProductService) Create(userID string, product *models.Product) error {
	if product.Price.IsNegative() {
		return fmt.Errorf("price must not be negative: %w", apperrors.ErrValidation)
	}
	product.OwnerID = userID
	return s.repo.Create(product)
}

// Update applies an edit to a listing after the ownership check. Absent
// fields keep their current values.
func (s *ProductService) Update(userID, productID string, update ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if err := authorize(userID, product.OwnerID); err != nil {
		return nil, err
	}

	if update.Title != nil {
		product.Title = *update.Title
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Price != nil {
		if update.Price.IsNegative() {
			return nil, fmt.Errorf("price must not be negative: %w", apperrors.ErrValidation)
		}
		product.Price = *update.Price
	}
	if update.ImageURL != nil {
		product.ImageURL = *update.ImageURL
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a listing after the ownership check.
func (s *ProductService) Delete(userID, productID string) error {
	product, err := s.repo.GetByID(productID)
	if err != nil {
		return err
	}
	if err := authorize(userID, product.OwnerID); err != nil {
		return err
	}
	return s.repo.Delete(productID)
}
