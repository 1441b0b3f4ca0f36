package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity"`

	// unit price copied from the product at order time; later price changes
	// never touch these rows
	Price decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Total decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	Type        string `json:"type"` // order | reserve
	ProductName string `json:"product_name"`

	OrderID uint  `json:"order_id"`
	Order   Order `json:"-"`

	ProductID uint    `json:"product_id"`
	Product   Product `json:"product,omitempty"`
}
