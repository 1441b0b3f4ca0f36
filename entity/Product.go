package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImagePath   string          `json:"image_path"`
	IsAvailable bool            `gorm:"default:true" json:"is_available"`

	StoreID uint  `json:"store_id"`
	Store   Store `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
