package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a snapshot of a menu item at order time. It deliberately
// carries no MenuItem foreign key, so later menu edits never alter
// historical orders.
type OrderItem struct {
	gorm.Model
	OrderID  uint   `json:"orderId"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"` // unit price in cents
}
