package services_test

import (
	"errors"
	"testing"

	"ecofinds/internal/apperrors"
	"ecofinds/internal/models"
	"ecofinds/internal/repositories"
	"ecofinds/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

// failingOrderRepo simulates a storage layer that rejects every operation.
type failingOrderRepo struct {
	err error
}

func (r *failingOrderRepo) GetByUser(string) ([]models.Order, error) { return nil, r.err }
func (r *failingOrderRepo) GetByID(string) (*models.Order, error)    { return nil, r.err }
func (r *failingOrderRepo) CreateFromCart(string, repositories.BuildOrderFunc) (*models.Order, error) {
	return nil, r.err
}

type checkoutFixture struct {
	products *repositories.MockProductRepository
	cart     *repositories.MockCartRepository
	orders   *repositories.MockOrderRepository
	cartSvc  *services.CartService
	orderSvc *services.OrderService
}

func newCheckoutFixture(t *testing.T, publisher services.EventPublisher) checkoutFixture {
	t.Helper()
	products := repositories.NewMockProductRepository()
	cart := repositories.NewMockCartRepository(products)
	orders := repositories.NewMockOrderRepository(cart)
	return checkoutFixture{
		products: products,
		cart:     cart,
		orders:   orders,
		cartSvc:  services.NewCartService(cart, products),
		orderSvc: services.NewOrderService(orders, publisher),
	}
}

func (f checkoutFixture) listProduct(t *testing.T, price int64) *models.Product {
	t.Helper()
	product := &models.Product{OwnerID: "seller-1", Title: "Listing", Price: decimal.NewFromInt(price)}
	assert.NoError(t, f.products.Create(product))
	return product
}

var testDelivery = services.DeliveryDetails{Address: "12 Beach Road", City: "Pune", Pincode: "411001"}

func TestOrderService_CheckoutCashOnDelivery(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("Publish", "orders", "order.created", mock.Anything).Return(nil).Once()
	f := newCheckoutFixture(t, publisher)

	p1 := f.listProduct(t, 100)
	p2 := f.listProduct(t, 50)

	_, err := f.cartSvc.Add("buyer-1", p1.ID, 1)
	assert.NoError(t, err)
	_, err = f.cartSvc.Add("buyer-1", p2.ID, 2)
	assert.NoError(t, err)

	order, err := f.orderSvc.Checkout("buyer-1", models.PaymentMethodCOD, testDelivery)
	assert.NoError(t, err)

	// (100 + 2*50) * 1.18 = 236.00
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(236)),
		"expected 236, got %s", order.TotalAmount)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, models.PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, "12 Beach Road", order.DeliveryAddress)

	// Order lines mirror the cart by product and quantity
	assert.Len(t, order.Lines, 2)
	byProduct := map[string]models.OrderLine{}
	for _, line := range order.Lines {
		byProduct[line.ProductID] = line
	}
	assert.Equal(t, 1, byProduct[p1.ID].Quantity)
	assert.True(t, byProduct[p1.ID].UnitPrice.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 2, byProduct[p2.ID].Quantity)
	assert.True(t, byProduct[p2.ID].UnitPrice.Equal(decimal.NewFromInt(50)))

	// The cart is drained
	lines, err := f.cartSvc.List("buyer-1")
	assert.NoError(t, err)
	assert.Empty(t, lines)

	publisher.AssertExpectations(t)
}

func TestOrderService_CheckoutCardCompletesImmediately(t *testing.T) {
	f := newCheckoutFixture(t, nil)
	p := f.listProduct(t, 80)
	_, err := f.cartSvc.Add("buyer-1", p.ID, 1)
	assert.NoError(t, err)

	order, err := f.orderSvc.Checkout("buyer-1", models.PaymentMethodCard, testDelivery)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, order.PaymentStatus)

	// upi behaves like card
	_, err = f.cartSvc.Add("buyer-1", p.ID, 1)
	assert.NoError(t, err)
	order, err = f.orderSvc.Checkout("buyer-1", models.PaymentMethodUPI, testDelivery)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, order.PaymentStatus)
}

func TestOrderService_CheckoutEmptyCart(t *testing.T) {
	publisher := new(MockPublisher)
	f := newCheckoutFixture(t, publisher)
	p := f.listProduct(t, 100)

	// Never had anything in the cart
	_, err := f.orderSvc.Checkout("buyer-1", models.PaymentMethodCOD, testDelivery)
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	history, _ := f.orderSvc.History("buyer-1")
	assert.Empty(t, history)

	// A second checkout right after a successful one sees the drained cart
	_, err = f.cartSvc.Add("buyer-1", p.ID, 1)
	assert.NoError(t, err)
	publisher.On("Publish", "orders", "order.created", mock.Anything).Return(nil).Once()
	_, err = f.orderSvc.Checkout("buyer-1", models.PaymentMethodCOD, testDelivery)
	assert.NoError(t, err)

	_, err = f.orderSvc.Checkout("buyer-1", models.PaymentMethodCOD, testDelivery)
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	history, _ = f.orderSvc.History("buyer-1")
	assert.Len(t, history, 1)
	publisher.AssertExpectations(t)
}

func TestOrderService_PriceAtPurchase(t *testing.T) {
	f := newCheckoutFixture(t, nil)
	p := f.listProduct(t, 100)

	_, err := f.cartSvc.Add("buyer-1", p.ID, 1)
	assert.NoError(t, err)
	order, err := f.orderSvc.Checkout("buyer-1", models.PaymentMethodCard, testDelivery)
	assert.NoError(t, err)

	// Raise the listing price after the purchase
	p.Price = decimal.NewFromInt(999)
	assert.NoError(t, f.products.Update(p))

	stored, err := f.orderSvc.Get("buyer-1", order.ID)
	assert.NoError(t, err)
	assert.True(t, stored.TotalAmount.Equal(decimal.NewFromInt(118)))
	assert.True(t, stored.Lines[0].UnitPrice.Equal(decimal.NewFromInt(100)))
}

func TestOrderService_CheckoutDelistedProduct(t *testing.T) {
	publisher := new(MockPublisher)
	f := newCheckoutFixture(t, publisher)
	p := f.listProduct(t, 100)

	_, err := f.cartSvc.Add("buyer-1", p.ID, 1)
	assert.NoError(t, err)

	// The seller takes the listing down before the buyer checks out
	assert.NoError(t, f.products.Delete(p.ID))

	_, err = f.orderSvc.Checkout("buyer-1", models.PaymentMethodCOD, testDelivery)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Nothing was ordered, nothing was published, the cart line remains
	history, _ := f.orderSvc.History("buyer-1")
	assert.Empty(t, history)
	lines, _ := f.cartSvc.List("buyer-1")
	assert.Len(t, lines, 1)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_TaxRounding(t *testing.T) {
	f := newCheckoutFixture(t, nil)

	// 33.33 * 1.18 = 39.3294, rounded to 39.33
	product := &models.Product{OwnerID: "seller-1", Title: "Odd Price", Price: decimal.RequireFromString("33.33")}
	assert.NoError(t, f.products.Create(product))
	_, err := f.cartSvc.Add("buyer-1", product.ID, 1)
	assert.NoError(t, err)

	order, err := f.orderSvc.Checkout("buyer-1", models.PaymentMethodCard, testDelivery)
	assert.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("39.33")),
		"expected 39.33, got %s", order.TotalAmount)
}

func TestOrderService_CheckoutValidation(t *testing.T) {
	f := newCheckoutFixture(t, nil)
	p := f.listProduct(t, 100)
	_, err := f.cartSvc.Add("buyer-1", p.ID, 1)
	assert.NoError(t, err)

	_, err = f.orderSvc.Checkout("buyer-1", models.PaymentMethod("bitcoin"), testDelivery)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// The cart is untouched by the rejected attempt
	lines, _ := f.cartSvc.List("buyer-1")
	assert.Len(t, lines, 1)
}

func TestOrderService_CheckoutStorageFailure(t *testing.T) {
	publisher := new(MockPublisher)
	boom := errors.New("connection reset")
	orderSvc := services.NewOrderService(&failingOrderRepo{err: boom}, publisher)

	_, err := orderSvc.Checkout("buyer-1", models.PaymentMethodCard, testDelivery)
	assert.ErrorIs(t, err, boom)
	// No event leaves the process for a failed checkout
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_GetOwnership(t *testing.T) {
	f := newCheckoutFixture(t, nil)
	p := f.listProduct(t, 100)
	_, err := f.cartSvc.Add("buyer-1", p.ID, 1)
	assert.NoError(t, err)
	order, err := f.orderSvc.Checkout("buyer-1", models.PaymentMethodCard, testDelivery)
	assert.NoError(t, err)

	// Another user cannot read the order
	_, err = f.orderSvc.Get("buyer-2", order.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// An unknown id is not-found even for the owner
	_, err = f.orderSvc.Get("buyer-1", "no-such-order")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
