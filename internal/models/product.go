package models

// Product represents a product in the store catalogue.
type Product struct {
	ProductID     uint    `json:"product_id" gorm:"column:product_id;primaryKey"`
	CategoryID    *uint   `json:"category_id" gorm:"index"`
	Name          string  `json:"name" gorm:"type:varchar(255)" validate:"required,min=1,max=255"`
	Description   string  `json:"description" validate:"omitempty,max=2000"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	ProductImage  string  `json:"product_image" gorm:"type:varchar(255)"`
}

// TableName overrides the default GORM table name.
func (Product) TableName() string { return "products" }

// Category groups products. CategoryID on Product is nullable; deleting a
// category does not touch its products.
type Category struct {
	CategoryID uint   `json:"category_id" gorm:"column:category_id;primaryKey"`
	Name       string `json:"name" gorm:"type:varchar(255)" validate:"required,min=1,max=255"`
}

// TableName overrides the default GORM table name.
func (Category) TableName() string { return "categories" }

// ProductPage is the pagination envelope returned by product listings.
type ProductPage struct {
	Items       []Product `json:"items"`
	CurrentPage int       `json:"current_page"`
	TotalPages  int       `json:"total_pages"`
	TotalItems  int64     `json:"total_items"`
	Limit       int       `json:"limit"`
}
