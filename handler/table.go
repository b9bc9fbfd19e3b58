package handler

import (
	"encoding/base64"
	"fmt"
	"log"
	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetTables(c *fiber.Ctx) error {
	var tables []model.Table
	if err := database.DB.Order("number asc").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tables)
}

func GetTableById(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(int)

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func CreateTable(c *fiber.Ctx) error {
	input := c.Locals("inputCreateTable").(model.CreateTableInput)

	table := model.Table{
		Number:   input.Number,
		Capacity: input.Capacity,
		Status:   constants.TABLE_AVAILABLE,
	}
	if err := database.DB.Create(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, table)
}

func EditTable(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(int)
	input := c.Locals("inputEditTable").(model.EditTableInput)
	db := database.DB

	var table model.Table
	if err := db.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	updates := map[string]interface{}{}
	if input.Capacity != nil {
		updates["capacity"] = *input.Capacity
	}
	if input.Status != nil {
		updates["status"] = *input.Status
		if *input.Status == constants.TABLE_AVAILABLE {
			updates["current_order_id"] = nil
		}
	}

	if err := db.Model(&table).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func DeleteTable(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Table{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}

// GetTableQR returns a QR code pointing guests at the self-ordering page for
// this table.
func GetTableQR(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(int)

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	baseUrl := config.ConfigOr("ORDERING_BASE_URL", "http://localhost:5173/order")
	content := fmt.Sprintf("%s?table=%d", baseUrl, table.Number)

	qrBytes, err := utils.GenerateQRCode(content, 400)
	if err != nil {
		log.Printf("failed to generate QR for table %d: %v", table.Number, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate QR", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"tableNumber": table.Number,
		"content":     content,
		"qrCode":      "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes),
	})
}
