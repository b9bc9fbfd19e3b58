package helper

import (
	"errors"
	"testing"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

func TestFormatOrderNumber(t *testing.T) {
	tests := []struct {
		name string
		id   uint
		want string
	}{
		{"small", 1, "ORD-0001"},
		{"padded", 42, "ORD-0042"},
		{"fourDigits", 1234, "ORD-1234"},
		{"overflowsPadding", 99999, "ORD-99999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatOrderNumber(tt.id); got != tt.want {
				t.Errorf("FormatOrderNumber(%d) = %s, want %s", tt.id, got, tt.want)
			}
		})
	}
}

func TestCalculateOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []model.OrderLineInput
		want  float64
	}{
		{"empty", nil, 0},
		{"singleLine", []model.OrderLineInput{{MenuItemId: 1, Quantity: 2, Price: 300}}, 600},
		{"multipleLines", []model.OrderLineInput{
			{MenuItemId: 1, Quantity: 2, Price: 300},
			{MenuItemId: 2, Quantity: 1, Price: 150},
		}, 750},
		{"freeItem", []model.OrderLineInput{{MenuItemId: 1, Quantity: 3, Price: 0}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateOrderTotal(tt.items); !almostEqual(got, tt.want) {
				t.Errorf("CalculateOrderTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaceOrderCreatesCustomerFromPhone(t *testing.T) {
	db := newTestDB(t)

	momo := seedMenuItem(t, db, "chicken momo", 300, 0)

	input := model.CreateOrderInput{
		Items:         []model.OrderLineInput{{MenuItemId: momo.ID, Quantity: 3, Price: 300}},
		CustomerName:  "Sita Rai",
		CustomerPhone: "9800000000",
	}

	order, err := PlaceOrder(db, input, 1)
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	if !almostEqual(order.TotalAmount, 900) {
		t.Errorf("totalAmount = %v, want 900", order.TotalAmount)
	}
	if order.Status != constants.ORDER_PENDING {
		t.Errorf("status = %s, want PENDING", order.Status)
	}
	if order.OrderNumber != FormatOrderNumber(order.ID) {
		t.Errorf("orderNumber = %s, want %s", order.OrderNumber, FormatOrderNumber(order.ID))
	}
	if order.CustomerID == nil {
		t.Fatal("expected a customer to be created from the phone number")
	}

	var customer model.Customer
	if err := db.First(&customer, *order.CustomerID).Error; err != nil {
		t.Fatalf("failed to load created customer: %v", err)
	}
	if customer.Phone != "9800000000" || customer.Name != "Sita Rai" {
		t.Errorf("customer = %s/%s, want Sita Rai/9800000000", customer.Name, customer.Phone)
	}
}

func TestPlaceOrderReusesCustomerByPhone(t *testing.T) {
	db := newTestDB(t)

	momo := seedMenuItem(t, db, "chicken momo", 300, 0)
	existing := model.Customer{Name: "Hari Thapa", Phone: "9811111111"}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}

	input := model.CreateOrderInput{
		Items:         []model.OrderLineInput{{MenuItemId: momo.ID, Quantity: 1, Price: 300}},
		CustomerPhone: "9811111111",
	}

	order, err := PlaceOrder(db, input, 1)
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if order.CustomerID == nil || *order.CustomerID != existing.ID {
		t.Errorf("customerId = %v, want existing customer %d", order.CustomerID, existing.ID)
	}

	var count int64
	db.Model(&model.Customer{}).Count(&count)
	if count != 1 {
		t.Errorf("customers = %d, want 1 (no duplicate created)", count)
	}
}

func TestPlaceOrderFlipsTable(t *testing.T) {
	db := newTestDB(t)

	momo := seedMenuItem(t, db, "chicken momo", 300, 0)
	table := model.Table{Number: 3, Capacity: 4, Status: constants.TABLE_AVAILABLE}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}

	input := model.CreateOrderInput{
		Items:   []model.OrderLineInput{{MenuItemId: momo.ID, Quantity: 2, Price: 300}},
		TableId: &table.ID,
	}

	order, err := PlaceOrder(db, input, 1)
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	var reloaded model.Table
	if err := db.First(&reloaded, table.ID).Error; err != nil {
		t.Fatalf("failed to reload table: %v", err)
	}
	if reloaded.Status != constants.TABLE_OCCUPIED {
		t.Errorf("table status = %s, want OCCUPIED", reloaded.Status)
	}
	if reloaded.CurrentOrderID == nil || *reloaded.CurrentOrderID != order.ID {
		t.Errorf("currentOrderId = %v, want %d", reloaded.CurrentOrderID, order.ID)
	}
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	db := newTestDB(t)

	_, err := PlaceOrder(db, model.CreateOrderInput{}, 1)
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("error = %v, want ErrEmptyOrder", err)
	}

	var count int64
	db.Model(&model.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders = %d, want 0", count)
	}
}

func TestPlaceOrderUnknownMenuItemRollsBack(t *testing.T) {
	db := newTestDB(t)

	input := model.CreateOrderInput{
		Items:         []model.OrderLineInput{{MenuItemId: 9999, Quantity: 1, Price: 300}},
		CustomerName:  "Sita Rai",
		CustomerPhone: "9800000000",
	}

	_, err := PlaceOrder(db, input, 1)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("error = %v, want gorm.ErrRecordNotFound", err)
	}

	var orders, customers int64
	db.Model(&model.Order{}).Count(&orders)
	db.Model(&model.Customer{}).Count(&customers)
	if orders != 0 || customers != 0 {
		t.Errorf("orders/customers = %d/%d, want 0/0 after rollback", orders, customers)
	}
}

func TestResolveCustomerFallbackName(t *testing.T) {
	db := newTestDB(t)

	input := model.CreateOrderInput{CustomerPhone: "9822222222"}
	customerId, err := ResolveCustomer(db, input)
	if err != nil {
		t.Fatalf("ResolveCustomer failed: %v", err)
	}
	if customerId == nil {
		t.Fatal("expected a customer id")
	}

	var customer model.Customer
	if err := db.First(&customer, *customerId).Error; err != nil {
		t.Fatalf("failed to load customer: %v", err)
	}
	if customer.Name != "Guest" {
		t.Errorf("name = %s, want Guest", customer.Name)
	}
}

func TestResolveCustomerNoIdentity(t *testing.T) {
	db := newTestDB(t)

	customerId, err := ResolveCustomer(db, model.CreateOrderInput{})
	if err != nil {
		t.Fatalf("ResolveCustomer failed: %v", err)
	}
	if customerId != nil {
		t.Errorf("customerId = %v, want nil for a walk-in guest", customerId)
	}
}
