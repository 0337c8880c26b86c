package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       int64        `json:"price"` // cents
	Category    MenuCategory `json:"category"`
	IsActive    bool         `json:"isActive"`
	Image       string       `json:"image"` // /uploads/... path, empty when none
}
