package services

import (
	"errors"
	"fmt"

	"flowerstore/internal/models"
	"flowerstore/internal/repositories"

	"gorm.io/gorm"
)

// AddressService handles business logic for user addresses. Its mutations
// preserve the at-most-one-current-address-per-user invariant.
type AddressService struct {
	addressRepo repositories.AddressRepository
	userRepo    repositories.UserRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(addressRepo repositories.AddressRepository, userRepo repositories.UserRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		userRepo:    userRepo,
	}
}

// AddAddress inserts a new address after demoting the user's existing
// current one. The owner must exist. The new row's is_current flag is taken
// from the request as-is.
func (s *AddressService) AddAddress(address *models.Address) error {
	if _, err := s.userRepo.GetByID(address.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %d: %w", address.UserID, ErrNotFound)
		}
		return fmt.Errorf("failed to look up user %d: %w", address.UserID, err)
	}
	return s.addressRepo.CreateDemotingCurrent(address)
}

// GetAddressesByUser returns every address of a user.
func (s *AddressService) GetAddressesByUser(userID uint) ([]models.Address, error) {
	return s.addressRepo.GetByUserID(userID)
}

// GetCurrentAddress returns the user's current address, or nil when the user
// has none. Absence is not an error.
func (s *AddressService) GetCurrentAddress(userID uint) (*models.Address, error) {
	return s.addressRepo.GetCurrentByUserID(userID)
}

// EditAddress overwrites the mutable fields of an address. The caller-stated
// user_id must match the stored owner.
func (s *AddressService) EditAddress(addressID uint, address *models.Address) (*models.Address, error) {
	existing, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("address %d: %w", addressID, ErrNotFound)
		}
		return nil, err
	}
	if existing.UserID != address.UserID {
		return nil, fmt.Errorf("address %d is not owned by user %d: %w", addressID, address.UserID, ErrForbidden)
	}

	address.AddressID = addressID
	if err := s.addressRepo.Update(address); err != nil {
		return nil, err
	}
	return s.addressRepo.GetByID(addressID)
}

// DeleteAddress removes an address. No other address is re-promoted to
// current afterwards.
func (s *AddressService) DeleteAddress(addressID uint) error {
	err := s.addressRepo.Delete(addressID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("address %d: %w", addressID, ErrNotFound)
	}
	return err
}

// SetCurrentAddress promotes an address to current, demoting every other
// address of the same user.
func (s *AddressService) SetCurrentAddress(addressID uint) (*models.Address, error) {
	existing, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("address %d: %w", addressID, ErrNotFound)
		}
		return nil, err
	}
	if err := s.addressRepo.SetCurrent(addressID, existing.UserID); err != nil {
		return nil, err
	}
	return s.addressRepo.GetByID(addressID)
}
