package repositories

import (
	"errors"
	"fmt"

	"flowerstore/internal/models"

	"gorm.io/gorm"
)

// GORMAddressRepository is a GORM implementation of AddressRepository.
type GORMAddressRepository struct {
	db *gorm.DB
}

// NewGORMAddressRepository creates a new instance of GORMAddressRepository.
func NewGORMAddressRepository(db *gorm.DB) *GORMAddressRepository {
	return &GORMAddressRepository{
		db: db,
	}
}

// CreateDemotingCurrent demotes any existing current address for the user and
// inserts the new row. The demote and insert run in one transaction so the
// at-most-one-current invariant holds even under concurrent adds.
func (r *GORMAddressRepository) CreateDemotingCurrent(address *models.Address) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).
			Where("user_id = ? AND is_current = ?", address.UserID, true).
			Update("is_current", false).Error; err != nil {
			return err
		}
		return tx.Create(address).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// GetByUserID retrieves all addresses belonging to a user.
func (r *GORMAddressRepository) GetByUserID(userID uint) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Find(&addresses, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get addresses for user %d: %w", userID, err)
	}
	return addresses, nil
}

// GetCurrentByUserID retrieves the user's current address, or nil when none
// is flagged.
func (r *GORMAddressRepository) GetCurrentByUserID(userID uint) (*models.Address, error) {
	var address models.Address
	err := r.db.First(&address, "user_id = ? AND is_current = ?", userID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current address for user %d: %w", userID, err)
	}
	return &address, nil
}

// GetByID retrieves a single address by its ID.
func (r *GORMAddressRepository) GetByID(id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, "address_id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get address by ID %d: %w", id, err)
	}
	return &address, nil
}

// Update overwrites all mutable fields of an address.
func (r *GORMAddressRepository) Update(address *models.Address) error {
	res := r.db.Model(&models.Address{}).
		Where("address_id = ?", address.AddressID).
		Select("address", "city", "state", "zip_code", "country", "is_current").
		Updates(address)
	if res.Error != nil {
		return fmt.Errorf("failed to update address %d: %w", address.AddressID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("failed to update address %d: %w", address.AddressID, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes an address row by its ID.
func (r *GORMAddressRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Address{}, "address_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete address %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("failed to delete address %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// SetCurrent promotes the target address after demoting every address of the
// owning user, inside one transaction.
func (r *GORMAddressRepository) SetCurrent(id uint, userID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).
			Where("user_id = ?", userID).
			Update("is_current", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Address{}).
			Where("address_id = ?", id).
			Update("is_current", true).Error
	})
	if err != nil {
		return fmt.Errorf("failed to set current address %d: %w", id, err)
	}
	return nil
}
