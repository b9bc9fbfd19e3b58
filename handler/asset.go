package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetAssets(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.Asset{}).Order("name asc")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var assets []model.Asset
	if err := query.Find(&assets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, assets)
}

func CreateAsset(c *fiber.Ctx) error {
	input := c.Locals("inputCreateAsset").(model.CreateAssetInput)

	asset := new(model.Asset)
	copier.Copy(&asset, &input)

	if err := database.DB.Create(&asset).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, asset)
}

func EditAsset(c *fiber.Ctx) error {
	assetId := uint(c.Locals("inputId").(int))
	input := c.Locals("inputEditAsset").(model.EditAssetInput)
	db := database.DB

	var asset model.Asset
	if err := db.First(&asset, assetId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	copier.Copy(&asset, &input)

	if err := db.Model(&model.Asset{DTO: model.DTO{ID: assetId}}).Updates(asset).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.First(&asset, assetId)

	return utils.SuccessResponse(c, fiber.StatusOK, asset)
}

func DeleteAsset(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Asset{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
