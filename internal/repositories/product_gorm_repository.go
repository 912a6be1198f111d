package repositories

import (
	"fmt"

	"flowerstore/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List returns one page of products and the total count for the same filter.
func (r *GORMProductRepository) List(categoryID *uint, limit, offset int) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	if err := query.Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "product_id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product row. The single statement runs inside a
// transaction so a constraint violation leaves nothing behind.
func (r *GORMProductRepository) Create(product *models.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateImagePath sets the stored image path of a product.
func (r *GORMProductRepository) UpdateImagePath(productID uint, path string) error {
	res := r.db.Model(&models.Product{}).
		Where("product_id = ?", productID).
		Update("product_image", path)
	if res.Error != nil {
		return fmt.Errorf("failed to update product image for product %d: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("failed to update product image for product %d: %w", productID, gorm.ErrRecordNotFound)
	}
	return nil
}

// GetAllCategories retrieves every category row.
func (r *GORMProductRepository) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a new category row.
func (r *GORMProductRepository) CreateCategory(category *models.Category) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(category).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category row. Products referencing it are left
// untouched.
func (r *GORMProductRepository) DeleteCategory(id uint) error {
	if err := r.db.Delete(&models.Category{}, "category_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}
