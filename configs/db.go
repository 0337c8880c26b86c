package configs

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Bossnapi119/pakawinasiayam/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the sqlite store. WAL lets the kitchen devices read while
// the submission path writes; busy_timeout makes conflicting writers wait
// instead of failing immediately.
func ConnectionDB(source string) error {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", source)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.SiteConfig{},
		&entity.AdminUser{},
	)
}
