package services_test

import (
	"testing"

	"flowerstore/internal/models"
	"flowerstore/internal/repositories"
	"flowerstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAddressService(t *testing.T) (*services.AddressService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return services.NewAddressService(
		repositories.NewGORMAddressRepository(db),
		repositories.NewGORMUserRepository(db),
	), db
}

func countCurrent(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Address{}).
		Where("user_id = ? AND is_current = ?", userID, true).
		Count(&n).Error)
	return n
}

func TestAddressService_AddAddress(t *testing.T) {
	svc, db := newAddressService(t)
	user := createUser(t, db, "alice")

	// Unknown user
	err := svc.AddAddress(&models.Address{UserID: 999, Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US", IsCurrent: true})
	assert.ErrorIs(t, err, services.ErrNotFound)

	// First address becomes the only current one
	first := models.Address{UserID: user.UserID, Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US", IsCurrent: true}
	require.NoError(t, svc.AddAddress(&first))
	assert.NotZero(t, first.AddressID)
	assert.EqualValues(t, 1, countCurrent(t, db, user.UserID))

	// A second current address demotes the first
	second := models.Address{UserID: user.UserID, Address: "2 Oak Ave", City: "Springfield", State: "IL", ZipCode: "62702", Country: "US", IsCurrent: true}
	require.NoError(t, svc.AddAddress(&second))
	assert.EqualValues(t, 1, countCurrent(t, db, user.UserID))

	current, err := svc.GetCurrentAddress(user.UserID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.AddressID, current.AddressID)

	// Adding a non-current address still demotes; the caller's flag is kept
	third := models.Address{UserID: user.UserID, Address: "3 Elm Rd", City: "Springfield", State: "IL", ZipCode: "62703", Country: "US", IsCurrent: false}
	require.NoError(t, svc.AddAddress(&third))
	assert.EqualValues(t, 0, countCurrent(t, db, user.UserID))

	current, err = svc.GetCurrentAddress(user.UserID)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestAddressService_SetCurrentAddress(t *testing.T) {
	svc, db := newAddressService(t)
	user := createUser(t, db, "alice")

	a := models.Address{UserID: user.UserID, Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US", IsCurrent: true}
	require.NoError(t, svc.AddAddress(&a))
	b := models.Address{UserID: user.UserID, Address: "2 Oak Ave", City: "Springfield", State: "IL", ZipCode: "62702", Country: "US", IsCurrent: true}
	require.NoError(t, svc.AddAddress(&b))

	promoted, err := svc.SetCurrentAddress(a.AddressID)
	require.NoError(t, err)
	assert.True(t, promoted.IsCurrent)
	assert.EqualValues(t, 1, countCurrent(t, db, user.UserID))

	// Unknown address
	_, err = svc.SetCurrentAddress(999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAddressService_EditAddress(t *testing.T) {
	svc, db := newAddressService(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	a := models.Address{UserID: alice.UserID, Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US", IsCurrent: true}
	require.NoError(t, svc.AddAddress(&a))

	// Wrong owner stated in the payload
	_, err := svc.EditAddress(a.AddressID, &models.Address{UserID: bob.UserID, Address: "stolen", City: "x", State: "x", ZipCode: "x", Country: "x"})
	assert.ErrorIs(t, err, services.ErrForbidden)

	// The record is unchanged after the rejected edit
	var unchanged models.Address
	require.NoError(t, db.First(&unchanged, "address_id = ?", a.AddressID).Error)
	assert.Equal(t, "1 Main St", unchanged.Address)

	// Unknown address
	_, err = svc.EditAddress(999, &models.Address{UserID: alice.UserID})
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Successful edit overwrites all mutable fields, including is_current
	updated, err := svc.EditAddress(a.AddressID, &models.Address{
		UserID: alice.UserID, Address: "1B Main St", City: "Shelbyville", State: "IL", ZipCode: "62565", Country: "US", IsCurrent: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "1B Main St", updated.Address)
	assert.Equal(t, "Shelbyville", updated.City)
	assert.False(t, updated.IsCurrent)
}

func TestAddressService_DeleteAddress(t *testing.T) {
	svc, db := newAddressService(t)
	user := createUser(t, db, "alice")

	a := models.Address{UserID: user.UserID, Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US", IsCurrent: true}
	require.NoError(t, svc.AddAddress(&a))

	require.NoError(t, svc.DeleteAddress(a.AddressID))

	// No re-promotion happens; the user simply has no current address
	current, err := svc.GetCurrentAddress(user.UserID)
	require.NoError(t, err)
	assert.Nil(t, current)

	// Deleting a missing address fails
	assert.ErrorIs(t, svc.DeleteAddress(a.AddressID), services.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteAddress(999), services.ErrNotFound)
}
