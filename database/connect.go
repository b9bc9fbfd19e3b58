package database

import (
	"fmt"
	"restaurant_manager/config"
	"restaurant_manager/model"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigOr("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(DB)
	fmt.Println("Database Migrated")

	SeedData(DB)
}

// Migrate is separate from ConnectDB so tests can run it against their own DB.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.Account{},
		&model.Staff{},
		&model.Customer{},
		&model.MenuCategory{},
		&model.MenuItem{},
		&model.Ingredient{},
		&model.Recipe{},
		&model.StockMovement{},
		&model.Table{},
		&model.Order{},
		&model.OrderItem{},
		&model.Purchase{},
		&model.PurchaseItem{},
		&model.Promotion{},
		&model.Asset{},
		&model.Requisition{},
		&model.RequisitionItem{},
		&model.Bill{},
	)
}
