package entity

import (
	"gorm.io/gorm"
)

type Store struct {
	gorm.Model
	BusinessName   string `json:"business_name"`
	BusinessType   string `json:"business_type"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	ContactNumber  string `json:"contact_number"`
	OperatingHours string `json:"operating_hours"`
	StoreImage     string `json:"store_image"`

	UserID uint `json:"user_id"` // owner; at most one store per account
	User   User `json:"-"`

	Products []Product  `json:"-"`
	Orders   []Order    `json:"-"`
	Feedback []Feedback `json:"-"`
}
