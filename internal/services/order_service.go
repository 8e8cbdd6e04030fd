package services

import (
	"encoding/json"
	"fmt"
	"log"

	"ecofinds/internal/apperrors"
	"ecofinds/internal/models"
	"ecofinds/internal/repositories"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat tax applied to every order subtotal at checkout.
var TaxRate = decimal.NewFromFloat(0.18)

// EventPublisher publishes marketplace events to the message broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// DeliveryDetails is where a checked-out order ships to. All fields are
// required and validated at the request boundary before reaching here.
type DeliveryDetails struct {
	Address string
	City    string
	Pincode string
}

// OrderService handles checkout and the append-only order history.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// Checkout converts the user's cart into an order: each line is priced from
// its product snapshot, an 18% tax is added on top of the subtotal, the
// payment status is derived from the method, and the order insert plus cart
// drain commit as one unit. On any failure the cart is left intact for retry.
func (s *OrderService) Checkout(userID string, method models.PaymentMethod, delivery DeliveryDetails) (*models.Order, error) {
	if _, ok := models.ParsePaymentMethod(string(method)); !ok {
		return nil, fmt.Errorf("unknown payment method %q: %w", method, apperrors.ErrValidation)
	}

	order, err := s.orderRepo.CreateFromCart(userID, func(lines []models.CartLine) (*models.Order, error) {
		subtotal := decimal.Zero
		orderLines := make([]models.OrderLine, 0, len(lines))
		for _, line := range lines {
			unit := line.Product.Price // price at purchase, copied by value
			subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
			orderLines = append(orderLines, models.OrderLine{
				ProductID: line.ProductID,
				UnitPrice: unit,
				Quantity:  line.Quantity,
			})
		}
		total := subtotal.Add(subtotal.Mul(TaxRate)).Round(2)

		return &models.Order{
			UserID:          userID,
			TotalAmount:     total,
			PaymentMethod:   method,
			PaymentStatus:   method.Status(),
			DeliveryAddress: delivery.Address,
			City:            delivery.City,
			Pincode:         delivery.Pincode,
			Lines:           orderLines,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publishOrderCreated(order)
	return order, nil
}

// History returns the user's orders, newest first.
func (s *OrderService) History(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// Get returns a single order after the ownership check.
func (s *OrderService) Get(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if err := authorize(userID, order.UserID); err != nil {
		return nil, err
	}
	return order, nil
}

// publishOrderCreated emits an order.created event. Publishing is best
// effort: a broker failure is logged and never fails the checkout.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"orderID":       order.ID,
		"userID":        order.UserID,
		"total":         order.TotalAmount,
		"paymentStatus": order.PaymentStatus,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event: %v", err)
		return
	}
	if err := s.publisher.Publish("orders", "order.created", body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		return
	}
	log.Printf("Published order created event for order %s", order.ID)
}
