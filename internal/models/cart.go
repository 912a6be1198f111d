package models

// Cart is the per-user container for pending purchases. Each user has at
// most one cart row; it is created lazily on the first add.
type Cart struct {
	CartID uint `json:"cart_id" gorm:"column:cart_id;primaryKey"`
	UserID uint `json:"user_id" gorm:"uniqueIndex"`
}

// TableName overrides the default GORM table name.
func (Cart) TableName() string { return "carts" }

// CartItem is one (product, quantity) pair in a cart, unique per
// (cart_id, product_id). Re-adding a product increments the quantity.
type CartItem struct {
	CartID    uint `json:"cart_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint `json:"product_id" gorm:"primaryKey;autoIncrement:false" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// TableName overrides the default GORM table name.
func (CartItem) TableName() string { return "cart_items" }

// CartItemDetail is a cart item joined with its product's catalogue fields.
type CartItemDetail struct {
	ProductID    uint    `json:"product_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
}

// CartPage is the pagination envelope returned by cart listings.
type CartPage struct {
	Items       []CartItemDetail `json:"items"`
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
	TotalItems  int64            `json:"total_items"`
	Limit       int              `json:"limit"`
}
