package repositories

import "flowerstore/internal/models"

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// AddItems ensures a cart row exists for the user and upserts each item,
	// incrementing the quantity of already-present products. The whole batch
	// runs inside one transaction.
	AddItems(userID uint, items []models.CartItem) error
	// GetPage returns one page of cart items joined with product details plus
	// the total item count for the user's cart.
	GetPage(userID uint, limit, offset int) ([]models.CartItemDetail, int64, error)
	// DeleteItem removes the (cart, product) row if present; deleting a
	// missing row is a no-op.
	DeleteItem(userID, productID uint) error
}
