package repositories

import "flowerstore/internal/models"

// ProductRepository defines the interface for product and category data access.
type ProductRepository interface {
	// List returns one page of products plus the total row count for the
	// same filter. categoryID nil means no category filter.
	List(categoryID *uint, limit, offset int) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	UpdateImagePath(productID uint, path string) error

	GetAllCategories() ([]models.Category, error)
	CreateCategory(category *models.Category) error
	DeleteCategory(id uint) error
}
