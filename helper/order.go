package helper

import (
	"errors"
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

var ErrEmptyOrder = errors.New("order must contain at least one item")

// FormatOrderNumber builds the display number from the row's own primary key,
// so two concurrent inserts can never collide on the same number.
func FormatOrderNumber(id uint) string {
	return fmt.Sprintf("ORD-%04d", id)
}

func CalculateOrderTotal(items []model.OrderLineInput) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

// PlaceOrder persists an order, its line items, the customer resolution and the
// optional table flip as a single transaction. Item prices are taken from the
// request as-is: the snapshot decouples historical bills from later menu edits.
func PlaceOrder(db *gorm.DB, input model.CreateOrderInput, createdBy uint) (*model.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var created model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		customerId, err := ResolveCustomer(tx, input)
		if err != nil {
			return err
		}

		order := model.Order{
			CustomerID:  customerId,
			TableID:     input.TableId,
			TotalAmount: CalculateOrderTotal(input.Items),
			Status:      constants.ORDER_PENDING,
			Note:        input.Note,
			CreatedBy:   createdBy,
		}
		for _, line := range input.Items {
			var menuItem model.MenuItem
			if err := tx.First(&menuItem, line.MenuItemId).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, model.OrderItem{
				MenuItemID: menuItem.ID,
				Quantity:   line.Quantity,
				Price:      line.Price,
			})
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		// The number needs the generated id, so it lands in a second statement
		// of the same transaction.
		order.OrderNumber = FormatOrderNumber(order.ID)
		if err := tx.Model(&order).Update("order_number", order.OrderNumber).Error; err != nil {
			return err
		}

		if input.TableId != nil {
			var table model.Table
			if err := tx.First(&table, *input.TableId).Error; err != nil {
				return err
			}
			if err := tx.Model(&table).Updates(map[string]interface{}{
				"status":           constants.TABLE_OCCUPIED,
				"current_order_id": order.ID,
			}).Error; err != nil {
				return err
			}
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Items.MenuItem").Preload("Customer").Preload("Table").First(&created, created.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}
