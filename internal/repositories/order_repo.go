package repositories

import "flowerstore/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create inserts the order header and its items in one transaction.
	Create(order *models.Order) error
	GetAll() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	GetByUserIDAndStatus(userID uint, status string) ([]models.Order, error)
	UpdateStatus(id uint, status string) error
}
