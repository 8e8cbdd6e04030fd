package handlers

import (
	"log"

	"ecofinds/internal/models"
	"ecofinds/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and order history.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes; all of them require auth.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	orders := router.Group("/orders", auth)
	orders.Post("/", h.HandleCheckout)
	orders.Get("/", h.HandleHistory)
	orders.Get("/:id", h.HandleGetByID)
}

// PaymentDetailsRequest is where the order ships to. Every field is
// required; there are no silent defaults.
type PaymentDetailsRequest struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

// CheckoutRequest represents the request body for converting the cart into
// an order.
type CheckoutRequest struct {
	PaymentMethod  string                `json:"payment_method" validate:"required,oneof=card upi cod"`
	PaymentDetails PaymentDetailsRequest `json:"payment_details"`
}

// HandleCheckout converts the authenticated user's cart into an order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	method, _ := models.ParsePaymentMethod(req.PaymentMethod)
	order, err := h.service.Checkout(currentUserID(c), method, services.DeliveryDetails{
		Address: req.PaymentDetails.Address,
		City:    req.PaymentDetails.City,
		Pincode: req.PaymentDetails.Pincode,
	})
	if err != nil {
		log.Printf("Error during checkout: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleHistory returns the authenticated user's orders, newest first.
func (h *OrderHandler) HandleHistory(c *fiber.Ctx) error {
	orders, err := h.service.History(currentUserID(c))
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetByID returns a single order owned by the authenticated user.
func (h *OrderHandler) HandleGetByID(c *fiber.Ctx) error {
	order, err := h.service.Get(currentUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
