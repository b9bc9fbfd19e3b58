package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("inputCreateOrder").(model.CreateOrderInput)

	claim, _, _ := helper.GetInfoAccountFromToken(c)

	order, err := helper.PlaceOrder(database.DB, input, claim.AccountId)
	if err != nil {
		if errors.Is(err, helper.ErrEmptyOrder) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_ITEMS_EMPTY, err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	PublishKitchenEvent("order_created", order)

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	orderId := uint(c.Locals("inputId").(int))
	input := c.Locals("inputStatus").(model.UpdateOrderStatusInput)

	order, err := helper.ChangeOrderStatus(database.DB, orderId, input.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		if errors.Is(err, helper.ErrIllegalTransition) {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.ILLEGAL_TRANSITION, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	PublishKitchenEvent("order_status", order)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetOrders(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterOrder
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	query := db.Model(&model.Order{}).
		Preload("Items.MenuItem").
		Preload("Customer").
		Preload("Table").
		Order("created_at desc")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.TableId != nil {
		query = query.Where("table_id = ?", *filter.TableId)
	}
	if day := utils.ParseDay(filter.Date); !day.IsZero() {
		query = query.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
	}

	var totalCount int64
	query.Count(&totalCount)

	var orders []model.Order
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetOrderById(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.
		Preload("Items.MenuItem").
		Preload("Customer").
		Preload("Table").
		First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// GetKitchenQueue lists active orders oldest-first for the kitchen display.
func GetKitchenQueue(c *fiber.Ctx) error {
	var orders []model.Order
	if err := database.DB.
		Preload("Items.MenuItem").
		Preload("Table").
		Where("status IN ?", []string{constants.ORDER_CONFIRMED, constants.ORDER_PREPARING, constants.ORDER_READY}).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

// GetOrderMovements exposes the deduction audit trail for one order.
func GetOrderMovements(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var movements []model.StockMovement
	if err := database.DB.
		Preload("Ingredient").
		Where("order_id = ?", order.ID).
		Order("created_at asc").
		Find(&movements).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movements)
}
