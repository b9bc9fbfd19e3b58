package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetPromotions(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.Promotion{}).Order("created_at desc")
	if active := c.Query("active"); active == "true" {
		now := time.Now()
		query = query.Where("active = ? AND starts_at <= ? AND ends_at >= ?", true, now, now)
	}

	var promotions []model.Promotion
	if err := query.Find(&promotions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promotions)
}

func CreatePromotion(c *fiber.Ctx) error {
	input := c.Locals("inputCreatePromotion").(model.CreatePromotionInput)
	db := database.DB

	code := strings.ToUpper(input.Code)
	var existing model.Promotion
	if err := db.Where("code = ?", code).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Promotion code already exists", nil, "code")
	}

	promotion := new(model.Promotion)
	copier.Copy(&promotion, &input)
	promotion.Code = code
	promotion.Active = true

	if err := db.Create(&promotion).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, promotion)
}

func EditPromotion(c *fiber.Ctx) error {
	promotionId := uint(c.Locals("inputId").(int))
	input := c.Locals("inputEditPromotion").(model.EditPromotionInput)
	db := database.DB

	var promotion model.Promotion
	if err := db.First(&promotion, promotionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	updates := map[string]interface{}{}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Value != nil {
		updates["value"] = *input.Value
	}
	if input.StartsAt != nil {
		updates["starts_at"] = *input.StartsAt
	}
	if input.EndsAt != nil {
		updates["ends_at"] = *input.EndsAt
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if err := db.Model(&promotion).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promotion)
}

func DeletePromotion(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Model(&model.Promotion{}).
		Where("id IN ?", input.IDs).
		Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deactivated": len(input.IDs)})
}
