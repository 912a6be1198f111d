package models

// Address is a shipping/billing address belonging to a user. At most one
// address per user carries IsCurrent=true.
type Address struct {
	AddressID uint   `json:"address_id" gorm:"column:address_id;primaryKey"`
	UserID    uint   `json:"user_id" gorm:"index" validate:"required"`
	Address   string `json:"address" gorm:"type:varchar(255)" validate:"required"`
	City      string `json:"city" gorm:"type:varchar(255)" validate:"required"`
	State     string `json:"state" gorm:"type:varchar(255)" validate:"required"`
	ZipCode   string `json:"zip_code" gorm:"type:varchar(255)" validate:"required"`
	Country   string `json:"country" gorm:"type:varchar(255)" validate:"required"`
	IsCurrent bool   `json:"is_current"`
}

// TableName overrides the default GORM table name.
func (Address) TableName() string { return "addresses" }
