package handlers

import (
	"fmt"
	"log"
	"strconv"

	"flowerstore/internal/models"
	"flowerstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalogue and its
// categories.
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

// RegisterPublicRoutes registers the catalogue routes that need no
// authentication.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/get_products", h.HandleGetProducts)
	productRoutes.Get("/get_all_categories", h.HandleGetAllCategories)
}

// RegisterRoutes registers the catalogue mutation routes. These are
// protected.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/add_product", h.HandleAddProduct)
	productRoutes.Post("/add_product_image", h.HandleAddProductImage)
	productRoutes.Post("/add_category", h.HandleAddCategory)
	productRoutes.Delete("/delete_category", h.HandleDeleteCategory)
}

// HandleGetProducts lists products with pagination and an optional category
// filter.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "category_id must be a positive integer",
			})
		}
		id := uint(parsed)
		categoryID = &id
	}
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	productPage, err := h.service.ListProducts(categoryID, page, limit)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(productPage)
}

// HandleAddProduct creates a new product. Store errors surface as 400, as
// the single insert is rolled back on constraint violation.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing add product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
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

	product.ProductID = 0
	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not add product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Product added successfully",
		"product_id": product.ProductID,
	})
}

// HandleAddProductImage stores an uploaded image for a product and updates
// the product's image path.
func (h *ProductHandler) HandleAddProductImage(c *fiber.Ctx) error {
	productID, err := strconv.ParseUint(c.FormValue("product_id"), 10, 32)
	if err != nil || productID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id form field is required",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "file form field is required",
			"error":   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not read uploaded file",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	path, err := h.service.SaveProductImage(uint(productID), file)
	if err != nil {
		log.Printf("Error saving image for product %d: %v", productID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not upload image",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message":   "Image uploaded successfully",
		"file_path": path,
	})
}

// HandleGetAllCategories lists every category.
func (h *ProductHandler) HandleGetAllCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

// HandleAddCategory creates a new category.
func (h *ProductHandler) HandleAddCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		log.Printf("Error parsing add category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Category name is required",
		})
	}

	category.CategoryID = 0
	if err := h.service.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not add category",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Category added successfully",
		"category": category,
	})
}

// HandleDeleteCategory removes a category. Products referencing it are left
// untouched.
func (h *ProductHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID := c.QueryInt("category_id")
	if categoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "category_id query parameter is required",
		})
	}

	if err := h.service.DeleteCategory(uint(categoryID)); err != nil {
		log.Printf("Error deleting category %d: %v", categoryID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not delete category",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
