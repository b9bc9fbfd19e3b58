package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupOrderApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database.Migrate(db)
	database.DB = db

	app := fiber.New()
	app.Post("/order", validate.CreateOrder(), CreateOrder)
	app.Patch("/order/:orderId/status", validate.UpdateOrderStatus("orderId"), UpdateOrderStatus)
	return app
}

func seedOrderMenuItem(t *testing.T, name string, price float64) model.MenuItem {
	t.Helper()
	item := model.MenuItem{Name: name, Slug: name, Price: price, IsAvailable: true}
	if err := database.DB.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	return item
}

func postJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func TestCreateOrderEndpoint(t *testing.T) {
	app := setupOrderApp(t)
	momo := seedOrderMenuItem(t, "chicken momo", 300)

	status, body := postJSON(t, app, fiber.MethodPost, "/order", model.CreateOrderInput{
		Items: []model.OrderLineInput{
			{MenuItemId: momo.ID, Quantity: 3, Price: 300},
		},
		CustomerName:  "Sita Rai",
		CustomerPhone: "9800000000",
	})

	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %v)", status, body)
	}

	data := body["data"].(map[string]any)
	if data["totalAmount"].(float64) != 900 {
		t.Errorf("totalAmount = %v, want 900", data["totalAmount"])
	}
	if data["status"].(string) != constants.ORDER_PENDING {
		t.Errorf("status = %v, want PENDING", data["status"])
	}

	var customer model.Customer
	if err := database.DB.Where("phone = ?", "9800000000").First(&customer).Error; err != nil {
		t.Errorf("expected customer created from phone: %v", err)
	}
}

func TestCreateOrderEndpointEmptyItems(t *testing.T) {
	app := setupOrderApp(t)

	status, _ := postJSON(t, app, fiber.MethodPost, "/order", model.CreateOrderInput{})
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400 for empty items", status)
	}

	var count int64
	database.DB.Model(&model.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders = %d, want 0", count)
	}
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	app := setupOrderApp(t)
	momo := seedOrderMenuItem(t, "chicken momo", 300)

	order := model.Order{
		Status: constants.ORDER_PENDING,
		Items:  []model.OrderItem{{MenuItemID: momo.ID, Quantity: 1, Price: 300}},
	}
	if err := database.DB.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}

	tests := []struct {
		name       string
		orderId    uint
		status     string
		wantStatus int
	}{
		{"legalTransition", order.ID, "confirmed", fiber.StatusOK},
		{"illegalJump", order.ID, "served", fiber.StatusUnprocessableEntity},
		{"unknownStatus", order.ID, "shipped", fiber.StatusBadRequest},
		{"unknownOrder", 9999, "confirmed", fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("/order/%d/status", tt.orderId)
			status, body := postJSON(t, app, fiber.MethodPatch, path, model.UpdateOrderStatusInput{Status: tt.status})
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %v)", status, tt.wantStatus, body)
			}
		})
	}
}
