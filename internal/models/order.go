package models

// OrderItem is a single line of an order, priced at order time.
type OrderItem struct {
	OrderItemID  uint    `json:"order_item_id" gorm:"column:order_item_id;primaryKey"`
	OrderID      uint    `json:"order_id" gorm:"index"`
	ProductID    uint    `json:"product_id" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	PricePerUnit float64 `json:"price_per_unit" validate:"gte=0"`
}

// TableName overrides the default GORM table name.
func (OrderItem) TableName() string { return "order_items" }

// Order represents a customer order with its items. Status is an open
// string ("pending", "shipped", ...); no transition rules are enforced.
type Order struct {
	OrderID    uint        `json:"order_id" gorm:"column:order_id;primaryKey"`
	UserID     uint        `json:"user_id" gorm:"index" validate:"required"`
	AddressID  uint        `json:"address_id" validate:"required"`
	OrderDate  string      `json:"order_date" gorm:"type:varchar(255)"`
	Status     string      `json:"status" gorm:"type:varchar(255)"`
	TotalPrice float64     `json:"total_price"`
	OrderItems []OrderItem `json:"order_items" gorm:"foreignKey:OrderID" validate:"required,min=1,dive"`
}

// TableName overrides the default GORM table name.
func (Order) TableName() string { return "orders" }
