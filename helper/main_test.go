package helper

import (
	"testing"

	"restaurant_manager/database"
	"restaurant_manager/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// :memory: is per-connection, so the pool must stay at one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database.Migrate(db)
	return db
}

func seedIngredient(t *testing.T, db *gorm.DB, name string, stock float64) model.Ingredient {
	t.Helper()
	ingredient := model.Ingredient{Name: name, Unit: "kg", CurrentStock: stock}
	if err := db.Create(&ingredient).Error; err != nil {
		t.Fatalf("failed to seed ingredient: %v", err)
	}
	return ingredient
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price, finishedStock float64, recipes ...model.Recipe) model.MenuItem {
	t.Helper()
	item := model.MenuItem{
		Name:         name,
		Slug:         name,
		Price:        price,
		CurrentStock: finishedStock,
		IsAvailable:  true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	for _, recipe := range recipes {
		recipe.MenuItemID = item.ID
		if err := db.Create(&recipe).Error; err != nil {
			t.Fatalf("failed to seed recipe: %v", err)
		}
	}
	return item
}

func seedOrder(t *testing.T, db *gorm.DB, status string, items ...model.OrderItem) model.Order {
	t.Helper()
	order := model.Order{Status: status, Items: items}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	order.OrderNumber = FormatOrderNumber(order.ID)
	if err := db.Model(&order).Update("order_number", order.OrderNumber).Error; err != nil {
		t.Fatalf("failed to set order number: %v", err)
	}
	return order
}

func ingredientStock(t *testing.T, db *gorm.DB, id uint) float64 {
	t.Helper()
	var ingredient model.Ingredient
	if err := db.First(&ingredient, id).Error; err != nil {
		t.Fatalf("failed to reload ingredient: %v", err)
	}
	return ingredient.CurrentStock
}

func menuItemStock(t *testing.T, db *gorm.DB, id uint) float64 {
	t.Helper()
	var item model.MenuItem
	if err := db.First(&item, id).Error; err != nil {
		t.Fatalf("failed to reload menu item: %v", err)
	}
	return item.CurrentStock
}

func countMovements(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&model.StockMovement{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count movements: %v", err)
	}
	return count
}
