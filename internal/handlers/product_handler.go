package handlers

import (
	"log"

	"ecofinds/internal/models"
	"ecofinds/internal/repositories"
	"ecofinds/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes. Browsing is public; every
// mutation and the my-listings view require the auth middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	products := router.Group("/products")
	products.Get("/", h.HandleSearch)
	products.Get("/:id", h.HandleGetByID)
	products.Post("/", auth, h.HandleCreate)
	products.Put("/:id", auth, h.HandleUpdate)
	products.Delete("/:id", auth, h.HandleDelete)

	router.Get("/my/products", auth, h.HandleMyListings)
}

// HandleSearch lists catalog products, optionally filtered by the q and
// category query parameters.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	filter := repositories.SearchFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}
	products, err := h.service.Search(filter)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetByID retrieves a single product.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	product, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleMyListings retrieves the authenticated user's own listings.
func (h *ProductHandler) HandleMyListings(c *fiber.Ctx) error {
	products, err := h.service.ListByOwner(currentUserID(c))
	if err != nil {
		log.Printf("Error listing own products: %v", err)
		return respondError(c, err)
	}
	return c.JSON(products)
}

// CreateProductRequest represents the request body for listing a product.
// Price is parsed strictly; malformed numeric input never reaches the
// service layer.
type CreateProductRequest struct {
	Title       string           `json:"title" validate:"required,min=1,max=100"`
	Description string           `json:"description" validate:"omitempty,max=500"`
	Category    string           `json:"category" validate:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string           `json:"image_url" validate:"omitempty,max=500"`
}

// HandleCreate lists a new product owned by the authenticated user.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	product := &models.Product{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := h.service.Create(currentUserID(c), product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProductRequest represents a partial product edit. Absent fields keep
// their current values.
type UpdateProductRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,max=500"`
}

// HandleUpdate edits a listing owned by the authenticated user.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	product, err := h.service.Update(currentUserID(c), c.Params("id"), services.ProductUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		log.Printf("Error updating product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDelete removes a listing owned by the authenticated user.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(currentUserID(c), c.Params("id")); err != nil {
		log.Printf("Error deleting product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
