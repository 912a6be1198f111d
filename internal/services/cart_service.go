package services

import (
	"flowerstore/internal/models"
	"flowerstore/internal/repositories"
)

// CartService handles business logic for the per-user shopping cart.
type CartService struct {
	cartRepo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
	}
}

// AddToCart upserts the given items into the user's cart, creating the cart
// on first use. Re-added products have their quantity incremented.
func (s *CartService) AddToCart(userID uint, items []models.CartItem) error {
	return s.cartRepo.AddItems(userID, items)
}

// GetCartPage returns one page of the user's cart joined with product
// details plus pagination metadata. An empty cart is an empty page.
func (s *CartService) GetCartPage(userID uint, page, limit int) (*models.CartPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	items, total, err := s.cartRepo.GetPage(userID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &models.CartPage{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		Limit:       limit,
	}, nil
}

// RemoveFromCart deletes a product from the user's cart. Removing a product
// that is not in the cart is a no-op.
func (s *CartService) RemoveFromCart(userID, productID uint) error {
	return s.cartRepo.DeleteItem(userID, productID)
}
