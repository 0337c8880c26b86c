package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Bossnapi119/pakawinasiayam/entity"
)

func SeedAdmin(username, password string) error {
	var count int64
	db.Model(&entity.AdminUser{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	log.Println("seeding admin user:", username)
	return db.Create(&entity.AdminUser{Username: username, Password: string(hash)}).Error
}

func SeedSiteConfig() error {
	var count int64
	db.Model(&entity.SiteConfig{}).Count(&count)
	if count > 0 {
		return nil
	}
	return db.Create(&entity.SiteConfig{ID: 1, BrandName: "Pak Awi Nasi Ayam"}).Error
}

// SeedMenu inserts the starter menu on an empty table so a fresh install has
// something to sell.
func SeedMenu() error {
	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Nasi Ayam Biasa", Description: "Our signature chicken rice with fragrant rice and tender chicken.", Price: 990, Category: entity.CategoryMain, IsActive: true},
		{Name: "Nasi Ayam Special", Description: "Special chicken rice with extra chicken and sides.", Price: 1290, Category: entity.CategoryMain, IsActive: true},
		{Name: "Teh O' Ais", Description: "Iced plain tea.", Price: 300, Category: entity.CategoryDrink, IsActive: true},
	}
	return db.Create(&items).Error
}
