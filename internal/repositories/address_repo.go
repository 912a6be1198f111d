package repositories

import "flowerstore/internal/models"

// AddressRepository defines the interface for address data access.
type AddressRepository interface {
	// CreateDemotingCurrent demotes the user's current address (if any) and
	// inserts the new row, both inside one transaction.
	CreateDemotingCurrent(address *models.Address) error
	GetByUserID(userID uint) ([]models.Address, error)
	// GetCurrentByUserID returns (nil, nil) when the user has no current address.
	GetCurrentByUserID(userID uint) (*models.Address, error)
	GetByID(id uint) (*models.Address, error)
	Update(address *models.Address) error
	Delete(id uint) error
	// SetCurrent demotes every address of the owning user and promotes the
	// target, inside one transaction.
	SetCurrent(id uint, userID uint) error
}
