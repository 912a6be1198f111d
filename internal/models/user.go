package models

import "time"

// User represents a registered customer of the store.
type User struct {
	UserID       uint      `json:"user_id" gorm:"column:user_id;primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(255)" validate:"required,min=3,max=100"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	FirstName    string    `json:"first_name" gorm:"type:varchar(255)"`
	LastName     string    `json:"last_name" gorm:"type:varchar(255)"`
	PhoneNumber  string    `json:"phone_number" gorm:"type:varchar(255)"`
	Role         string    `json:"role" gorm:"type:varchar(255)"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"` // Never serialized
	Disabled     bool      `json:"disabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides the default GORM table name.
func (User) TableName() string { return "users" }
