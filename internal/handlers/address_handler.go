package handlers

import (
	"fmt"
	"log"

	"flowerstore/internal/models"
	"flowerstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AddressHandler handles HTTP requests for user addresses.
type AddressHandler struct {
	service  *services.AddressService
	validate *validator.Validate
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(service *services.AddressService) *AddressHandler {
	return &AddressHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the address routes. All of them are protected.
func (h *AddressHandler) RegisterRoutes(router fiber.Router) {
	addressRoutes := router.Group("/addresses")
	addressRoutes.Post("/add_address", h.HandleAddAddress)
	addressRoutes.Get("/get_addresses_by_user_id", h.HandleGetAddressesByUserID)
	addressRoutes.Get("/get_current_address_by_user_id", h.HandleGetCurrentAddress)
	addressRoutes.Put("/edit_address_by_address_id", h.HandleEditAddress)
	addressRoutes.Delete("/delete_address_by_address_id", h.HandleDeleteAddress)
	addressRoutes.Put("/set_current_address_by_address_id", h.HandleSetCurrentAddress)
}

// HandleAddAddress creates a new address for a user, demoting the previous
// current one.
func (h *AddressHandler) HandleAddAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		log.Printf("Error parsing add address request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(address); err != nil {
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

	address.AddressID = 0
	if err := h.service.AddAddress(&address); err != nil {
		log.Printf("Error adding address for user %d: %v", address.UserID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not add address",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

// HandleGetAddressesByUserID lists all addresses of a user.
func (h *AddressHandler) HandleGetAddressesByUserID(c *fiber.Ctx) error {
	userID := c.QueryInt("user_id")
	if userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "user_id query parameter is required",
		})
	}

	addresses, err := h.service.GetAddressesByUser(uint(userID))
	if err != nil {
		log.Printf("Error getting addresses for user %d: %v", userID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve addresses",
			"error":   err.Error(),
		})
	}
	return c.JSON(addresses)
}

// HandleGetCurrentAddress returns the user's current address, or null when
// none is flagged.
func (h *AddressHandler) HandleGetCurrentAddress(c *fiber.Ctx) error {
	userID := c.QueryInt("user_id")
	if userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "user_id query parameter is required",
		})
	}

	address, err := h.service.GetCurrentAddress(uint(userID))
	if err != nil {
		log.Printf("Error getting current address for user %d: %v", userID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve current address",
			"error":   err.Error(),
		})
	}
	return c.JSON(address)
}

// HandleEditAddress overwrites an address's mutable fields. The payload's
// user_id must match the stored owner.
func (h *AddressHandler) HandleEditAddress(c *fiber.Ctx) error {
	addressID := c.QueryInt("address_id")
	if addressID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "address_id query parameter is required",
		})
	}

	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		log.Printf("Error parsing edit address request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	updated, err := h.service.EditAddress(uint(addressID), &address)
	if err != nil {
		log.Printf("Error editing address %d: %v", addressID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not edit address",
			"error":   err.Error(),
		})
	}
	return c.JSON(updated)
}

// HandleDeleteAddress removes an address.
func (h *AddressHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	addressID := c.QueryInt("address_id")
	if addressID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "address_id query parameter is required",
		})
	}

	if err := h.service.DeleteAddress(uint(addressID)); err != nil {
		log.Printf("Error deleting address %d: %v", addressID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not delete address",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSetCurrentAddress promotes an address to current for its owner.
func (h *AddressHandler) HandleSetCurrentAddress(c *fiber.Ctx) error {
	addressID := c.QueryInt("address_id")
	if addressID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "address_id query parameter is required",
		})
	}

	address, err := h.service.SetCurrentAddress(uint(addressID))
	if err != nil {
		log.Printf("Error setting current address %d: %v", addressID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not set current address",
			"error":   err.Error(),
		})
	}
	return c.JSON(address)
}
