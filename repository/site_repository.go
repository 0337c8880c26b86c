package repository

import (
	"gorm.io/gorm"

	"github.com/Bossnapi119/pakawinasiayam/entity"
)

type SiteRepository struct {
	DB *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{DB: db}
}

func (r *SiteRepository) Get() (*entity.SiteConfig, error) {
	var cfg entity.SiteConfig
	if err := r.DB.Where("id = ?", 1).First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *SiteRepository) Update(fields map[string]any) error {
	return r.DB.Model(&entity.SiteConfig{}).Where("id = ?", 1).Updates(fields).Error
}
