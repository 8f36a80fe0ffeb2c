package models

import "time"

// User represents a registered account.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FirstName string    `json:"firstName" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	LastName  string    `json:"lastName" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	City      string    `json:"city" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
