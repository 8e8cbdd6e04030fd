package services_test

import (
	"testing"

	"ecofinds/internal/apperrors"
	"ecofinds/internal/models"
	"ecofinds/internal/repositories"
	"ecofinds/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Search(filter repositories.SearchFilter) ([]models.Product, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByOwner(ownerID string) ([]models.Product, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_Search(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: "1", Title: "Bamboo Desk", Price: decimal.NewFromInt(120)},
		{ID: "2", Title: "Rattan Chair", Price: decimal.NewFromInt(60)},
	}
	filter := repositories.SearchFilter{Query: "desk", Category: "furniture"}

	mockRepo.On("Search", filter).Return(expected, nil).Once()

	products, err := service.Search(filter)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Create(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	product := &models.Product{Title: "Old Lamp", Price: decimal.NewFromInt(25)}
	mockRepo.On("Create", product).Return(nil).Once()

	err := service.Create("user-1", product)
	assert.NoError(t, err)
	// The owner is always the authenticated requester, never client input
	assert.Equal(t, "user-1", product.OwnerID)
	mockRepo.AssertExpectations(t)

	// Negative price never reaches the repository
	bad := &models.Product{Title: "Bad Lamp", Price: decimal.NewFromInt(-5)}
	err = service.Create("user-1", bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "Create", bad)
}

func TestProductService_Update(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	title := "Restored Lamp"
	price := decimal.NewFromInt(30)

	// Owner can edit; absent fields keep their current values
	existing := &models.Product{
		ID:          "prod-1",
		OwnerID:     "user-1",
		Title:       "Old Lamp",
		Description: "A bit dusty",
		Price:       decimal.NewFromInt(25),
	}
	mockRepo.On("GetByID", "prod-1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	updated, err := service.Update("user-1", "prod-1", services.ProductUpdate{Title: &title, Price: &price})
	assert.NoError(t, err)
	assert.Equal(t, "Restored Lamp", updated.Title)
	assert.Equal(t, "A bit dusty", updated.Description)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(30)))
	mockRepo.AssertExpectations(t)

	// Someone else's edit is forbidden and nothing is written
	foreign := &models.Product{ID: "prod-2", OwnerID: "user-1", Title: "Old Lamp"}
	mockRepo.On("GetByID", "prod-2").Return(foreign, nil).Once()
	_, err = service.Update("user-2", "prod-2", services.ProductUpdate{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	mockRepo.AssertNotCalled(t, "Update", foreign)

	// Unknown id is not-found, even for its would-be owner
	mockRepo.On("GetByID", "prod-99").Return(nil, apperrors.ErrNotFound).Once()
	_, err = service.Update("user-1", "prod-99", services.ProductUpdate{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Delete(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "prod-1", OwnerID: "user-1", Title: "Old Lamp"}

	// Owner can delete
	mockRepo.On("GetByID", "prod-1").Return(existing, nil).Once()
	mockRepo.On("Delete", "prod-1").Return(nil).Once()
	err := service.Delete("user-1", "prod-1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// A non-owner cannot, and the delete never reaches the repository
	mockRepo.On("GetByID", "prod-1").Return(existing, nil).Once()
	err = service.Delete("user-2", "prod-1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	mockRepo.AssertExpectations(t)
}
