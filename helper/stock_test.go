package helper

import (
	"errors"
	"math"
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pendingToConfirmed", constants.ORDER_PENDING, constants.ORDER_CONFIRMED, true},
		{"confirmedToPreparing", constants.ORDER_CONFIRMED, constants.ORDER_PREPARING, true},
		{"preparingToReady", constants.ORDER_PREPARING, constants.ORDER_READY, true},
		{"readyToServed", constants.ORDER_READY, constants.ORDER_SERVED, true},
		{"pendingToCancelled", constants.ORDER_PENDING, constants.ORDER_CANCELLED, true},
		{"preparingToCancelled", constants.ORDER_PREPARING, constants.ORDER_CANCELLED, true},
		{"pendingToPreparing", constants.ORDER_PENDING, constants.ORDER_PREPARING, false},
		{"confirmedToServed", constants.ORDER_CONFIRMED, constants.ORDER_SERVED, false},
		{"servedToAnything", constants.ORDER_SERVED, constants.ORDER_CANCELLED, false},
		{"cancelledToConfirmed", constants.ORDER_CANCELLED, constants.ORDER_CONFIRMED, false},
		{"readyBackToPreparing", constants.ORDER_READY, constants.ORDER_PREPARING, false},
		{"unknownStatus", "LOST", constants.ORDER_CONFIRMED, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestChangeOrderStatusDeductsOnPreparing(t *testing.T) {
	db := newTestDB(t)

	flour := seedIngredient(t, db, "flour", 10)
	pizza := seedMenuItem(t, db, "pizza", 300, 0, model.Recipe{IngredientID: flour.ID, Quantity: 0.2})
	order := seedOrder(t, db, constants.ORDER_CONFIRMED, model.OrderItem{MenuItemID: pizza.ID, Quantity: 2, Price: 300})

	updated, err := ChangeOrderStatus(db, order.ID, constants.ORDER_PREPARING)
	if err != nil {
		t.Fatalf("ChangeOrderStatus failed: %v", err)
	}
	if updated.Status != constants.ORDER_PREPARING {
		t.Errorf("status = %s, want %s", updated.Status, constants.ORDER_PREPARING)
	}
	if updated.StockDeductedAt == nil {
		t.Error("stockDeductedAt not set after deduction")
	}

	if got := ingredientStock(t, db, flour.ID); !almostEqual(got, 9.6) {
		t.Errorf("ingredient stock = %v, want 9.6", got)
	}

	var movement model.StockMovement
	if err := db.Where("order_id = ?", order.ID).First(&movement).Error; err != nil {
		t.Fatalf("expected a stock movement for the order: %v", err)
	}
	if movement.Type != constants.MOVEMENT_OUT {
		t.Errorf("movement type = %s, want OUT", movement.Type)
	}
	if !almostEqual(movement.Quantity, -0.4) {
		t.Errorf("movement quantity = %v, want -0.4", movement.Quantity)
	}
	if !almostEqual(movement.StockBefore, 10) || !almostEqual(movement.StockAfter, 9.6) {
		t.Errorf("movement before/after = %v/%v, want 10/9.6", movement.StockBefore, movement.StockAfter)
	}
}

func TestDeductStockFinishedStockCoversOrder(t *testing.T) {
	db := newTestDB(t)

	flour := seedIngredient(t, db, "flour", 10)
	pizza := seedMenuItem(t, db, "pizza", 300, 5, model.Recipe{IngredientID: flour.ID, Quantity: 0.2})
	order := seedOrder(t, db, constants.ORDER_CONFIRMED, model.OrderItem{MenuItemID: pizza.ID, Quantity: 2, Price: 300})

	if _, err := ChangeOrderStatus(db, order.ID, constants.ORDER_PREPARING); err != nil {
		t.Fatalf("ChangeOrderStatus failed: %v", err)
	}

	if got := menuItemStock(t, db, pizza.ID); !almostEqual(got, 3) {
		t.Errorf("finished stock = %v, want 3", got)
	}
	if got := ingredientStock(t, db, flour.ID); !almostEqual(got, 10) {
		t.Errorf("ingredient stock = %v, want untouched 10", got)
	}
	if got := countMovements(t, db); got != 0 {
		t.Errorf("movements = %d, want 0 when finished stock covers the order", got)
	}
}

func TestDeductStockPartialFinishedStock(t *testing.T) {
	db := newTestDB(t)

	flour := seedIngredient(t, db, "flour", 10)
	cheese := seedIngredient(t, db, "cheese", 5)
	pizza := seedMenuItem(t, db, "pizza", 300, 1,
		model.Recipe{IngredientID: flour.ID, Quantity: 0.2},
		model.Recipe{IngredientID: cheese.ID, Quantity: 0.1},
	)
	order := seedOrder(t, db, constants.ORDER_CONFIRMED, model.OrderItem{MenuItemID: pizza.ID, Quantity: 3, Price: 300})

	if _, err := ChangeOrderStatus(db, order.ID, constants.ORDER_PREPARING); err != nil {
		t.Fatalf("ChangeOrderStatus failed: %v", err)
	}

	// One unit from finished stock, two cooked from ingredients.
	if got := menuItemStock(t, db, pizza.ID); !almostEqual(got, 0) {
		t.Errorf("finished stock = %v, want 0", got)
	}
	if got := ingredientStock(t, db, flour.ID); !almostEqual(got, 9.6) {
		t.Errorf("flour stock = %v, want 9.6", got)
	}
	if got := ingredientStock(t, db, cheese.ID); !almostEqual(got, 4.8) {
		t.Errorf("cheese stock = %v, want 4.8", got)
	}
	if got := countMovements(t, db); got != 2 {
		t.Errorf("movements = %d, want one per recipe line", got)
	}
}

func TestDeductStockAllowsNegativeIngredient(t *testing.T) {
	db := newTestDB(t)

	saffron := seedIngredient(t, db, "saffron", 0.1)
	biryani := seedMenuItem(t, db, "biryani", 450, 0, model.Recipe{IngredientID: saffron.ID, Quantity: 0.2})
	order := seedOrder(t, db, constants.ORDER_CONFIRMED, model.OrderItem{MenuItemID: biryani.ID, Quantity: 2, Price: 450})

	if _, err := ChangeOrderStatus(db, order.ID, constants.ORDER_PREPARING); err != nil {
		t.Fatalf("ChangeOrderStatus failed: %v", err)
	}

	if got := ingredientStock(t, db, saffron.ID); !almostEqual(got, -0.3) {
		t.Errorf("ingredient stock = %v, want -0.3", got)
	}
}

func TestChangeOrderStatusSkipsDeductionWhenAlreadyDeducted(t *testing.T) {
	db := newTestDB(t)

	flour := seedIngredient(t, db, "flour", 10)
	pizza := seedMenuItem(t, db, "pizza", 300, 0, model.Recipe{IngredientID: flour.ID, Quantity: 0.2})
	order := seedOrder(t, db, constants.ORDER_CONFIRMED, model.OrderItem{MenuItemID: pizza.ID, Quantity: 2, Price: 300})

	deductedAt := time.Now().Add(-time.Minute)
	if err := db.Model(&order).Update("stock_deducted_at", deductedAt).Error; err != nil {
		t.Fatalf("failed to mark order deducted: %v", err)
	}

	if _, err := ChangeOrderStatus(db, order.ID, constants.ORDER_PREPARING); err != nil {
		t.Fatalf("ChangeOrderStatus failed: %v", err)
	}

	if got := ingredientStock(t, db, flour.ID); !almostEqual(got, 10) {
		t.Errorf("ingredient stock = %v, want untouched 10", got)
	}
	if got := countMovements(t, db); got != 0 {
		t.Errorf("movements = %d, want 0 on a second deduction attempt", got)
	}
}

func TestChangeOrderStatusIllegalTransition(t *testing.T) {
	db := newTestDB(t)

	flour := seedIngredient(t, db, "flour", 10)
	pizza := seedMenuItem(t, db, "pizza", 300, 0, model.Recipe{IngredientID: flour.ID, Quantity: 0.2})

	tests := []struct {
		name   string
		status string
		target string
	}{
		{"pendingToPreparing", constants.ORDER_PENDING, constants.ORDER_PREPARING},
		{"servedToCancelled", constants.ORDER_SERVED, constants.ORDER_CANCELLED},
		{"cancelledToConfirmed", constants.ORDER_CANCELLED, constants.ORDER_CONFIRMED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := seedOrder(t, db, tt.status, model.OrderItem{MenuItemID: pizza.ID, Quantity: 1, Price: 300})

			_, err := ChangeOrderStatus(db, order.ID, tt.target)
			if !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("error = %v, want ErrIllegalTransition", err)
			}

			var reloaded model.Order
			if err := db.First(&reloaded, order.ID).Error; err != nil {
				t.Fatalf("failed to reload order: %v", err)
			}
			if reloaded.Status != tt.status {
				t.Errorf("status = %s, want unchanged %s", reloaded.Status, tt.status)
			}
			if got := ingredientStock(t, db, flour.ID); !almostEqual(got, 10) {
				t.Errorf("ingredient stock = %v, want untouched 10", got)
			}
		})
	}
}

func TestChangeOrderStatusNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := ChangeOrderStatus(db, 9999, constants.ORDER_CONFIRMED)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("error = %v, want gorm.ErrRecordNotFound", err)
	}
	if got := countMovements(t, db); got != 0 {
		t.Errorf("movements = %d, want 0", got)
	}
}

func TestRecordMovementLedger(t *testing.T) {
	db := newTestDB(t)

	rice := seedIngredient(t, db, "rice", 20)

	err := db.Transaction(func(tx *gorm.DB) error {
		return RecordMovement(tx, rice.ID, 5, constants.MOVEMENT_IN, "purchase from Valley Traders", nil)
	})
	if err != nil {
		t.Fatalf("RecordMovement failed: %v", err)
	}

	if got := ingredientStock(t, db, rice.ID); !almostEqual(got, 25) {
		t.Errorf("ingredient stock = %v, want 25", got)
	}

	var movement model.StockMovement
	if err := db.Where("ingredient_id = ?", rice.ID).First(&movement).Error; err != nil {
		t.Fatalf("expected a ledger entry: %v", err)
	}
	if movement.Type != constants.MOVEMENT_IN {
		t.Errorf("movement type = %s, want IN", movement.Type)
	}
	if !almostEqual(movement.StockBefore, 20) || !almostEqual(movement.StockAfter, 25) {
		t.Errorf("movement before/after = %v/%v, want 20/25", movement.StockBefore, movement.StockAfter)
	}
}

func TestProduceMenuItem(t *testing.T) {
	db := newTestDB(t)

	flour := seedIngredient(t, db, "flour", 10)
	cheese := seedIngredient(t, db, "cheese", 5)
	pizza := seedMenuItem(t, db, "pizza", 300, 1,
		model.Recipe{IngredientID: flour.ID, Quantity: 0.2},
		model.Recipe{IngredientID: cheese.ID, Quantity: 0.1},
	)

	item, err := ProduceMenuItem(db, pizza.ID, 4)
	if err != nil {
		t.Fatalf("ProduceMenuItem failed: %v", err)
	}
	if !almostEqual(item.CurrentStock, 5) {
		t.Errorf("finished stock = %v, want 5", item.CurrentStock)
	}
	if got := ingredientStock(t, db, flour.ID); !almostEqual(got, 9.2) {
		t.Errorf("flour stock = %v, want 9.2", got)
	}
	if got := ingredientStock(t, db, cheese.ID); !almostEqual(got, 4.6) {
		t.Errorf("cheese stock = %v, want 4.6", got)
	}
	if got := countMovements(t, db); got != 2 {
		t.Errorf("movements = %d, want one per recipe line", got)
	}
}
