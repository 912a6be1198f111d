package services_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flowerstore/internal/models"
	"flowerstore/internal/repositories"
	"flowerstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(t *testing.T) (*services.ProductService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return services.NewProductService(repositories.NewGORMProductRepository(db), t.TempDir()), db
}

func TestProductService_ListProducts(t *testing.T) {
	svc, db := newProductService(t)

	roses := models.Category{Name: "Roses"}
	require.NoError(t, db.Create(&roses).Error)

	for i := 0; i < 7; i++ {
		p := models.Product{Name: "Rose", Price: 10, CategoryID: &roses.CategoryID}
		require.NoError(t, db.Create(&p).Error)
	}
	for i := 0; i < 3; i++ {
		createProduct(t, db, "Misc", 5)
	}

	// No filter: 10 products, limit 3 -> ceil(10/3) = 4 pages
	page, err := svc.ListProducts(nil, 1, 3)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.EqualValues(t, 10, page.TotalItems)
	assert.Equal(t, 4, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.Limit)

	// Last page holds the remainder
	page, err = svc.ListProducts(nil, 4, 3)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	// Category filter narrows both items and counts
	page, err = svc.ListProducts(&roses.CategoryID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 7)
	assert.EqualValues(t, 7, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)

	// Past-the-end page is empty but well-formed
	page, err = svc.ListProducts(nil, 9, 3)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 4, page.TotalPages)
}

func TestProductService_SaveProductImage(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	svc := services.NewProductService(repositories.NewGORMProductRepository(db), dir)

	product := createProduct(t, db, "Rose Bouquet", 29.99)

	path, err := svc.SaveProductImage(product.ProductID, strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Contains(t, path, "api/products/images/")

	// The file is stored under a name derived from the product ID
	data, err := os.ReadFile(filepath.Join(dir, "1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	// And the row records the public path
	var got models.Product
	require.NoError(t, db.First(&got, "product_id = ?", product.ProductID).Error)
	assert.Equal(t, path, got.ProductImage)

	// Unknown product: file write succeeds but the update fails
	_, err = svc.SaveProductImage(999, strings.NewReader("x"))
	assert.Error(t, err)
}

func TestProductService_Categories(t *testing.T) {
	svc, db := newProductService(t)

	require.NoError(t, svc.CreateCategory(&models.Category{Name: "Roses"}))
	require.NoError(t, svc.CreateCategory(&models.Category{Name: "Tulips"}))

	categories, err := svc.GetAllCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	// Deleting a referenced category leaves the product's category_id behind
	rose := models.Product{Name: "Rose", Price: 10, CategoryID: &categories[0].CategoryID}
	require.NoError(t, db.Create(&rose).Error)
	require.NoError(t, svc.DeleteCategory(categories[0].CategoryID))

	remaining, err := svc.GetAllCategories()
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	var orphan models.Product
	require.NoError(t, db.First(&orphan, "product_id = ?", rose.ProductID).Error)
	require.NotNil(t, orphan.CategoryID)
	assert.Equal(t, categories[0].CategoryID, *orphan.CategoryID)

	// Deleting a missing category is not an error
	assert.NoError(t, svc.DeleteCategory(999))
}
