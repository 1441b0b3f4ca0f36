package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Firstname string     `json:"firstname"`
	Lastname  string     `json:"lastname"`
	Birthday  *time.Time `json:"birthday"`
	Gender    string     `json:"gender"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `json:"-"`
	Role      string     `gorm:"not null;default:customer" json:"role"`

	// vendors need admin approval before their store is usable
	IsApproved bool `gorm:"default:false" json:"is_approved"`

	ProfilePicture string `json:"profile_picture"`

	// preload only when needed
	Store    *Store     `json:"store,omitempty"`
	Orders   []Order    `json:"-"`
	Feedback []Feedback `json:"-"`
}
