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

func GetIngredients(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterIngredient
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	query := db.Model(&model.Ingredient{}).Order("name asc")

	if filter.SearchKey != "" {
		query = query.Where("name ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.LowStock != nil && *filter.LowStock {
		query = query.Where("current_stock <= min_stock")
	}

	var totalCount int64
	query.Count(&totalCount)

	var ingredients []model.Ingredient
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).Find(&ingredients).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       ingredients,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetIngredientById(c *fiber.Ctx) error {
	ingredientId := c.Locals("inputId").(int)

	var ingredient model.Ingredient
	if err := database.DB.First(&ingredient, ingredientId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ingredient)
}

func CreateIngredient(c *fiber.Ctx) error {
	input := c.Locals("inputCreateIngredient").(model.CreateIngredientInput)

	ingredient := model.Ingredient{
		Name:         input.Name,
		Unit:         input.Unit,
		CurrentStock: input.CurrentStock,
		MinStock:     input.MinStock,
		UnitPrice:    input.UnitPrice,
	}
	if err := database.DB.Create(&ingredient).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, ingredient)
}

func EditIngredient(c *fiber.Ctx) error {
	ingredientId := c.Locals("inputId").(int)
	input := c.Locals("inputEditIngredient").(model.EditIngredientInput)
	db := database.DB

	var ingredient model.Ingredient
	if err := db.First(&ingredient, ingredientId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Unit != nil {
		updates["unit"] = *input.Unit
	}
	if input.MinStock != nil {
		updates["min_stock"] = *input.MinStock
	}
	if input.UnitPrice != nil {
		updates["unit_price"] = *input.UnitPrice
	}

	if err := db.Model(&ingredient).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ingredient)
}

// AdjustIngredientStock records a manual correction with its ledger entry.
// Current stock is never edited directly.
func AdjustIngredientStock(c *fiber.Ctx) error {
	ingredientId := uint(c.Locals("inputId").(int))
	input := c.Locals("inputAdjustStock").(model.AdjustStockInput)
	db := database.DB

	movementType := constants.MOVEMENT_IN
	if input.Quantity < 0 {
		movementType = constants.MOVEMENT_OUT
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return helper.RecordMovement(tx, ingredientId, input.Quantity, movementType, input.Reason, nil)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	var ingredient model.Ingredient
	db.First(&ingredient, ingredientId)

	return utils.SuccessResponse(c, fiber.StatusOK, ingredient)
}

func GetStockMovements(c *fiber.Ctx) error {
	db := database.DB

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	query := db.Model(&model.StockMovement{}).
		Preload("Ingredient").
		Order("created_at desc")

	if ingredientId := c.QueryInt("ingredientId"); ingredientId > 0 {
		query = query.Where("ingredient_id = ?", ingredientId)
	}
	if movementType := c.Query("type"); movementType != "" {
		query = query.Where("type = ?", movementType)
	}

	var totalCount int64
	query.Count(&totalCount)

	var movements []model.StockMovement
	if err := utils.ApplyPagination(query, pagination.Limit, pagination.Page).Find(&movements).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       movements,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetLowStock(c *fiber.Ctx) error {
	var ingredients []model.Ingredient
	if err := database.DB.Find(&ingredients).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.ScanLowStock(ingredients))
}
