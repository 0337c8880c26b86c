package repository

import (
	"gorm.io/gorm"

	"github.com/Bossnapi119/pakawinasiayam/entity"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByUsername(username string) (*entity.AdminUser, error) {
	var u entity.AdminUser
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AdminRepository) FindByID(id uint) (*entity.AdminUser, error) {
	var u entity.AdminUser
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AdminRepository) UpdatePassword(id uint, hash string) error {
	return r.DB.Model(&entity.AdminUser{}).Where("id = ?", id).Update("password", hash).Error
}
