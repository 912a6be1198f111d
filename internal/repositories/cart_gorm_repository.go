package repositories

import (
	"errors"
	"fmt"

	"flowerstore/internal/models"

	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// AddItems creates the user's cart if absent and upserts every item in one
// transaction. A product already in the cart gets its quantity incremented.
func (r *GORMCartRepository) AddItems(userID uint, items []models.CartItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.First(&cart, "user_id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, item := range items {
			var existing models.CartItem
			err := tx.First(&existing, "cart_id = ? AND product_id = ?", cart.CartID, item.ProductID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				row := models.CartItem{
					CartID:    cart.CartID,
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			if err := tx.Model(&models.CartItem{}).
				Where("cart_id = ? AND product_id = ?", cart.CartID, item.ProductID).
				Update("quantity", existing.Quantity+item.Quantity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add items to cart for user %d: %w", userID, err)
	}
	return nil
}

// GetPage returns one page of the user's cart joined with product details
// and the total item count. A missing cart yields an empty page.
func (r *GORMCartRepository) GetPage(userID uint, limit, offset int) ([]models.CartItemDetail, int64, error) {
	var cart models.Cart
	err := r.db.First(&cart, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.CartItemDetail{}, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get cart for user %d: %w", userID, err)
	}

	var total int64
	if err := r.db.Model(&models.CartItem{}).
		Where("cart_id = ?", cart.CartID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cart items for user %d: %w", userID, err)
	}

	var items []models.CartItemDetail
	err = r.db.Model(&models.CartItem{}).
		Select("cart_items.product_id, products.name, products.description, products.price, products.product_image, cart_items.quantity").
		Joins("JOIN products ON products.product_id = cart_items.product_id").
		Where("cart_items.cart_id = ?", cart.CartID).
		Order("cart_items.product_id").
		Limit(limit).Offset(offset).
		Scan(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get cart items for user %d: %w", userID, err)
	}
	if items == nil {
		items = []models.CartItemDetail{}
	}
	return items, total, nil
}

// DeleteItem removes the (cart, product) row. Absent rows are ignored.
func (r *GORMCartRepository) DeleteItem(userID, productID uint) error {
	var cart models.Cart
	err := r.db.First(&cart, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get cart for user %d: %w", userID, err)
	}

	if err := r.db.Delete(&models.CartItem{}, "cart_id = ? AND product_id = ?", cart.CartID, productID).Error; err != nil {
		return fmt.Errorf("failed to delete cart item %d for user %d: %w", productID, userID, err)
	}
	return nil
}
