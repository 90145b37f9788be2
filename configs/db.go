package configs

import (
	"github.com/kashann/aldente-restaurant/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Table{},
		&entity.Order{},
	)
}

// ล้าง schema แล้ว migrate ใหม่ (รองรับ GET /create)
func ResetDatabase(g *gorm.DB) error {
	if err := g.Migrator().DropTable(&entity.Order{}, &entity.Table{}); err != nil {
		return err
	}
	return g.AutoMigrate(&entity.Table{}, &entity.Order{})
}
