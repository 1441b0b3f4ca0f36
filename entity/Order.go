package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Type   string `json:"type"`   // order | reservation
	Status string `json:"status"` // see OrderStatus.go

	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	ServiceFee decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"service_fee"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	PaymentMethod string `json:"payment_method"` // cash | gcash

	// opaque blobs shaped by the client
	PaymentDetails datatypes.JSONMap `json:"payment_details"`
	UserInfo       datatypes.JSONMap `json:"user_info"`
	PickupInfo     datatypes.JSONMap `json:"pickup_info"`

	DeliveryAddress string `json:"delivery_address"`
	Notes           string `json:"notes"`

	UserID uint `json:"user_id"`
	User   User `json:"user,omitempty"`

	StoreID uint  `json:"store_id"`
	Store   Store `json:"store,omitempty"`

	Items []OrderItem `json:"items,omitempty"`
}
