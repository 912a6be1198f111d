package handlers

import (
	"fmt"
	"log"

	"flowerstore/internal/models"
	"flowerstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
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

// RegisterRoutes registers the order routes. All of them are protected.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/add_order", h.HandleAddOrder)
	orderRoutes.Get("/get_orders_all", h.HandleGetOrdersAll)
	orderRoutes.Get("/get_order_by_user_id", h.HandleGetOrdersByUserID)
	orderRoutes.Get("/get_order_by_user_id_and_status", h.HandleGetOrdersByUserIDAndStatus)
	orderRoutes.Put("/edit_order_status", h.HandleEditOrderStatus)
}

// HandleAddOrder creates a new order with its items. The supplied total,
// date and status are stored as-is.
func (h *OrderHandler) HandleAddOrder(c *fiber.Ctx) error {
	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		log.Printf("Error parsing add order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(order); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	order.OrderID = 0
	created, err := h.service.CreateOrder(&order)
	if err != nil {
		log.Printf("Error creating order for user %d: %v", order.UserID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleGetOrdersAll retrieves all orders.
func (h *OrderHandler) HandleGetOrdersAll(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrdersByUserID retrieves one user's orders.
func (h *OrderHandler) HandleGetOrdersByUserID(c *fiber.Ctx) error {
	userID := c.QueryInt("user_id")
	if userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "user_id query parameter is required",
		})
	}

	orders, err := h.service.GetOrdersByUser(uint(userID))
	if err != nil {
		log.Printf("Error getting orders for user %d: %v", userID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrdersByUserIDAndStatus retrieves one user's orders filtered by
// status.
func (h *OrderHandler) HandleGetOrdersByUserIDAndStatus(c *fiber.Ctx) error {
	userID := c.QueryInt("user_id")
	status := c.Query("status")
	if userID <= 0 || status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "user_id and status query parameters are required",
		})
	}

	orders, err := h.service.GetOrdersByUserAndStatus(uint(userID), status)
	if err != nil {
		log.Printf("Error getting orders for user %d with status %s: %v", userID, status, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleEditOrderStatus updates an order's status and returns the refreshed
// order. Any status string is accepted.
func (h *OrderHandler) HandleEditOrderStatus(c *fiber.Ctx) error {
	orderID := c.QueryInt("order_id")
	status := c.Query("status")
	if orderID <= 0 || status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "order_id and status query parameters are required",
		})
	}

	order, err := h.service.UpdateOrderStatus(uint(orderID), status)
	if err != nil {
		log.Printf("Error updating status for order %d: %v", orderID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}
