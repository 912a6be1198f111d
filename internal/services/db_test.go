package services_test

import (
	"fmt"
	"strings"
	"testing"

	"flowerstore/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory SQLite database named after the test so
// parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

// createUser inserts a user row directly, bypassing registration.
func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PhoneNumber:  "555-0100",
		Role:         "user",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// createProduct inserts a product row directly.
func createProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()

	product := models.Product{
		Name:          name,
		Description:   "test product",
		Price:         price,
		StockQuantity: 100,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}
