package handler

import (
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreatePurchase records a supplier delivery: the purchase rows, the ingredient
// stock increments and the IN movements land together or not at all.
func CreatePurchase(c *fiber.Ctx) error {
	input := c.Locals("inputCreatePurchase").(model.CreatePurchaseInput)
	claim, _, _ := helper.GetInfoAccountFromToken(c)

	purchasedAt := time.Now()
	if input.PurchasedAt != nil {
		purchasedAt = *input.PurchasedAt
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	purchase := model.Purchase{
		SupplierName: input.SupplierName,
		InvoiceNo:    input.InvoiceNo,
		PurchasedAt:  purchasedAt,
		RecordedBy:   claim.AccountId,
	}

	totalCost := 0.0
	for _, line := range input.Items {
		purchase.Items = append(purchase.Items, model.PurchaseItem{
			IngredientID: line.IngredientId,
			Quantity:     line.Quantity,
			UnitCost:     line.UnitCost,
		})
		totalCost += line.Quantity * line.UnitCost
	}
	purchase.TotalCost = helper.Round2(totalCost)

	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	for _, line := range input.Items {
		reason := fmt.Sprintf("purchase from %s", input.SupplierName)
		if input.InvoiceNo != "" {
			reason = fmt.Sprintf("%s (invoice %s)", reason, input.InvoiceNo)
		}
		if err := helper.RecordMovement(tx, line.IngredientId, line.Quantity, constants.MOVEMENT_IN, reason, nil); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
	}

	tx.Commit()

	database.DB.Preload("Items.Ingredient").First(&purchase, purchase.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, purchase)
}

func GetPurchases(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterPurchase
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	query := db.Model(&model.Purchase{}).
		Preload("Items.Ingredient").
		Order("purchased_at desc")

	if filter.SupplierName != "" {
		query = query.Where("supplier_name ILIKE ?", "%"+filter.SupplierName+"%")
	}
	if from := utils.ParseDay(filter.From); !from.IsZero() {
		query = query.Where("purchased_at >= ?", from)
	}
	if to := utils.ParseDay(filter.To); !to.IsZero() {
		query = query.Where("purchased_at < ?", to.AddDate(0, 0, 1))
	}

	var totalCount int64
	query.Count(&totalCount)

	var purchases []model.Purchase
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).Find(&purchases).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       purchases,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetPurchaseById(c *fiber.Ctx) error {
	purchaseId := c.Locals("inputId").(int)

	var purchase model.Purchase
	if err := database.DB.Preload("Items.Ingredient").First(&purchase, purchaseId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, purchase)
}
