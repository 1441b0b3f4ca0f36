package entity

import (
	"gorm.io/gorm"
)

type Feedback struct {
	gorm.Model
	Rating  int    `json:"rating"` // 1..5
	Comment string `gorm:"size:2000" json:"comment"`

	// both optional; anonymous feedback has no user
	UserID *uint `json:"user_id"`
	User   *User `json:"user,omitempty"`

	StoreID *uint  `json:"store_id"`
	Store   *Store `json:"store,omitempty"`
}
