package handlers

import (
	"log"

	"flowerstore/internal/middleware"
	"flowerstore/internal/models"
	"flowerstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart. The cart owner is
// the authenticated user.
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

// RegisterRoutes registers the cart routes. All of them are protected.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Post("/add_to_cart", h.HandleAddToCart)
	cartRoutes.Get("/get_cart_pagination", h.HandleGetCartPagination)
	cartRoutes.Delete("/remove_from_cart", h.HandleRemoveFromCart)
}

// AddToCartRequest represents the request body for adding one product to the
// cart.
type AddToCartRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// HandleAddToCart adds a product to the current user's cart, incrementing
// the quantity if the product is already there.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add to cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id and a positive quantity are required",
		})
	}

	user := middleware.CurrentUser(c)
	items := []models.CartItem{{ProductID: req.ProductID, Quantity: req.Quantity}}
	if err := h.service.AddToCart(user.UserID, items); err != nil {
		log.Printf("Error adding to cart for user %d: %v", user.UserID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not add to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Added to cart successfully",
	})
}

// HandleGetCartPagination returns one page of a cart joined with product
// details. user_id defaults to the authenticated user.
func (h *CartHandler) HandleGetCartPagination(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	userID := uint(c.QueryInt("user_id", int(user.UserID)))
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	cartPage, err := h.service.GetCartPage(userID, page, limit)
	if err != nil {
		log.Printf("Error getting cart page for user %d: %v", userID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cartPage)
}

// HandleRemoveFromCart deletes a product from the current user's cart.
// Removing an absent product succeeds.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	productID := c.QueryInt("product_id")
	if productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id query parameter is required",
		})
	}

	user := middleware.CurrentUser(c)
	if err := h.service.RemoveFromCart(user.UserID, uint(productID)); err != nil {
		log.Printf("Error removing product %d from cart for user %d: %v", productID, user.UserID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not remove from cart",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
