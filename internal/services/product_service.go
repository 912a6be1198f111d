package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"flowerstore/internal/models"
	"flowerstore/internal/repositories"
)

// ProductService handles business logic for the product catalogue and its
// categories, including stored product images.
type ProductService struct {
	repo     repositories.ProductRepository
	imageDir string
}

// NewProductService creates a new ProductService. imageDir is where uploaded
// product images are written; it is created if missing.
func NewProductService(repo repositories.ProductRepository, imageDir string) *ProductService {
	return &ProductService{
		repo:     repo,
		imageDir: imageDir,
	}
}

// ListProducts returns one page of products, optionally filtered by
// category, with pagination metadata.
func (s *ProductService) ListProducts(categoryID *uint, page, limit int) (*models.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := s.repo.List(categoryID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &models.ProductPage{
		Items:       products,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		Limit:       limit,
	}, nil
}

// CreateProduct inserts a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// SaveProductImage stores the uploaded file as <imageDir>/<product_id>.jpg
// and records the public path on the product row. File content is not
// inspected.
func (s *ProductService) SaveProductImage(productID uint, file io.Reader) (string, error) {
	if err := os.MkdirAll(s.imageDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	location := filepath.Join(s.imageDir, fmt.Sprintf("%d.jpg", productID))
	dst, err := os.Create(location)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	publicPath := fmt.Sprintf("api/products/images/%d.jpg", productID)
	if err := s.repo.UpdateImagePath(productID, publicPath); err != nil {
		return "", err
	}
	return publicPath, nil
}

// GetAllCategories retrieves every category.
func (s *ProductService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAllCategories()
}

// CreateCategory inserts a new category.
func (s *ProductService) CreateCategory(category *models.Category) error {
	return s.repo.CreateCategory(category)
}

// DeleteCategory removes a category. Products referencing it keep their
// dangling category_id, matching the unguarded semantics of the store.
func (s *ProductService) DeleteCategory(id uint) error {
	return s.repo.DeleteCategory(id)
}
