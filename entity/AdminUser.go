package entity

import (
	"gorm.io/gorm"
)

type AdminUser struct {
	gorm.Model
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"` // bcrypt hash
}
