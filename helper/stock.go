package helper

import (
	"errors"
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"time"

	"gorm.io/gorm"
)

var ErrIllegalTransition = errors.New("illegal status transition")

// Forward-only lifecycle; CANCELLED reachable from any non-terminal state.
var transitions = map[string][]string{
	constants.ORDER_PENDING:   {constants.ORDER_CONFIRMED, constants.ORDER_CANCELLED},
	constants.ORDER_CONFIRMED: {constants.ORDER_PREPARING, constants.ORDER_CANCELLED},
	constants.ORDER_PREPARING: {constants.ORDER_READY, constants.ORDER_CANCELLED},
	constants.ORDER_READY:     {constants.ORDER_SERVED, constants.ORDER_CANCELLED},
	constants.ORDER_SERVED:    {},
	constants.ORDER_CANCELLED: {},
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ChangeOrderStatus applies a transition. Moving to PREPARING deducts stock in
// the same transaction: a failed deduction rolls the status change back, so
// stock and status cannot disagree. StockDeductedAt keeps re-entry from
// deducting twice.
func ChangeOrderStatus(db *gorm.DB, orderId uint, target string) (*model.Order, error) {
	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderId).Error; err != nil {
			return err
		}
		if !CanTransition(order.Status, target) {
			return ErrIllegalTransition
		}

		updates := map[string]interface{}{"status": target}
		if target == constants.ORDER_PREPARING && order.StockDeductedAt == nil {
			if err := DeductStockForOrder(tx, &order); err != nil {
				return err
			}
			updates["stock_deducted_at"] = time.Now()
		}
		return tx.Model(&order).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Items.MenuItem").Preload("Table").First(&order, orderId).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// DeductStockForOrder consumes finished-good stock first and falls back to raw
// ingredients, per recipe, for the remaining shortfall only. Runs inside the
// caller's transaction. Finished stock is clamped at zero; ingredient stock may
// go negative (recipes are estimates, the kitchen is already cooking) and the
// ledger plus the low-stock scan make that visible.
func DeductStockForOrder(tx *gorm.DB, order *model.Order) error {
	for _, item := range order.Items {
		var menuItem model.MenuItem
		if err := tx.First(&menuItem, item.MenuItemID).Error; err != nil {
			return err
		}

		ordered := float64(item.Quantity)
		fromFinished := menuItem.CurrentStock
		if fromFinished > ordered {
			fromFinished = ordered
		}
		if fromFinished > 0 {
			if err := tx.Model(&menuItem).Update("current_stock", menuItem.CurrentStock-fromFinished).Error; err != nil {
				return err
			}
		}

		shortfall := ordered - fromFinished
		if shortfall <= 0 {
			continue
		}

		var recipes []model.Recipe
		if err := tx.Where("menu_item_id = ?", menuItem.ID).Find(&recipes).Error; err != nil {
			return err
		}
		for _, recipe := range recipes {
			required := recipe.Quantity * shortfall
			reason := fmt.Sprintf("order %s - %s", order.OrderNumber, menuItem.Name)
			if err := RecordMovement(tx, recipe.IngredientID, -required, constants.MOVEMENT_OUT, reason, &order.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordMovement applies a signed stock delta to an ingredient and appends the
// matching ledger entry. Every stock mutation in the system goes through here.
func RecordMovement(tx *gorm.DB, ingredientId uint, quantity float64, movementType, reason string, orderId *uint) error {
	var ingredient model.Ingredient
	if err := tx.First(&ingredient, ingredientId).Error; err != nil {
		return err
	}

	newStock := ingredient.CurrentStock + quantity
	if err := tx.Model(&ingredient).Update("current_stock", newStock).Error; err != nil {
		return err
	}

	movement := model.StockMovement{
		IngredientID: ingredient.ID,
		Quantity:     quantity,
		Type:         movementType,
		Reason:       reason,
		StockBefore:  ingredient.CurrentStock,
		StockAfter:   newStock,
		OrderID:      orderId,
	}
	return tx.Create(&movement).Error
}

// ProduceMenuItem converts ingredients into finished-good stock per the item's
// recipe, one atomic batch.
func ProduceMenuItem(db *gorm.DB, menuItemId uint, quantity float64) (*model.MenuItem, error) {
	var menuItem model.MenuItem
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&menuItem, menuItemId).Error; err != nil {
			return err
		}

		var recipes []model.Recipe
		if err := tx.Where("menu_item_id = ?", menuItem.ID).Find(&recipes).Error; err != nil {
			return err
		}
		reason := fmt.Sprintf("production of %s", menuItem.Name)
		for _, recipe := range recipes {
			required := recipe.Quantity * quantity
			if err := RecordMovement(tx, recipe.IngredientID, -required, constants.MOVEMENT_OUT, reason, nil); err != nil {
				return err
			}
		}

		return tx.Model(&menuItem).Update("current_stock", menuItem.CurrentStock+quantity).Error
	})
	if err != nil {
		return nil, err
	}
	return &menuItem, nil
}
