package database

import (
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123456"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	accounts := []model.Account{
		{Username: "administrator", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	categories := []model.MenuCategory{
		{Name: "Starters"},
		{Name: "Mains"},
		{Name: "Beverages"},
		{Name: "Desserts"},
	}
	for _, category := range categories {
		if err := db.Where(model.MenuCategory{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed category:", category.Name, "error:", err)
		}
	}

	tables := []model.Table{
		{Number: 1, Capacity: 2, Status: constants.TABLE_AVAILABLE},
		{Number: 2, Capacity: 4, Status: constants.TABLE_AVAILABLE},
		{Number: 3, Capacity: 4, Status: constants.TABLE_AVAILABLE},
		{Number: 4, Capacity: 6, Status: constants.TABLE_AVAILABLE},
	}
	for _, table := range tables {
		if err := db.Where(model.Table{Number: table.Number}).FirstOrCreate(&table).Error; err != nil {
			log.Println("failed to seed table:", table.Number, "error:", err)
		}
	}
}
