package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	OrderType      OrderType `json:"orderType"`
	TableNumber    string    `json:"tableNumber"`    // required for dine-in
	SpecialRequest string    `json:"specialRequest"` // <=100 chars, enforced at submit

	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`

	// Always the sum of the item snapshots taken at creation, never
	// recomputed from current menu prices.
	Total int64 `json:"total"`

	Items []OrderItem `json:"items"`
}
