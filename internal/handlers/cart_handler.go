package handlers

import (
	"log"

	"ecofinds/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the user's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes; all of them require auth.
func (h *CartHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	cart := router.Group("/cart", auth)
	cart.Get("/", h.HandleList)
	cart.Post("/", h.HandleAdd)
	cart.Delete("/:id", h.HandleRemove)
}

// HandleList returns the authenticated user's cart lines with product
// snapshots.
func (h *CartHandler) HandleList(c *fiber.Ctx) error {
	lines, err := h.service.List(currentUserID(c))
	if err != nil {
		log.Printf("Error listing cart: %v", err)
		return respondError(c, err)
	}
	return c.JSON(lines)
}

// AddToCartRequest represents the request body for adding a cart line.
// Quantity is optional; anything below 1 is coerced to 1.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// HandleAdd inserts a new cart line for the authenticated user.
func (h *CartHandler) HandleAdd(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add to cart request body: %v", err)
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	line, err := h.service.Add(currentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding to cart: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// HandleRemove deletes a single cart line owned by the authenticated user.
func (h *CartHandler) HandleRemove(c *fiber.Ctx) error {
	if err := h.service.Remove(currentUserID(c), c.Params("id")); err != nil {
		log.Printf("Error removing cart line %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
