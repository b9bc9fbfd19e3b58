package handler

import (
	"errors"
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateRequisition(c *fiber.Ctx) error {
	input := c.Locals("inputCreateRequisition").(model.CreateRequisitionInput)
	claim, _, _ := helper.GetInfoAccountFromToken(c)

	requisition := model.Requisition{
		RequestedBy: claim.AccountId,
		Station:     input.Station,
		Status:      constants.REQUISITION_PENDING,
		Note:        input.Note,
	}
	for _, line := range input.Items {
		requisition.Items = append(requisition.Items, model.RequisitionItem{
			IngredientID: line.IngredientId,
			Quantity:     line.Quantity,
		})
	}

	if err := database.DB.Create(&requisition).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	database.DB.Preload("Items.Ingredient").First(&requisition, requisition.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, requisition)
}

func GetRequisitions(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.Requisition{}).
		Preload("Items.Ingredient").
		Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requisitions []model.Requisition
	if err := query.Find(&requisitions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, requisitions)
}

// ApproveRequisition releases the requested stock to the station: the status
// flip, the deductions and the OUT movements are one transaction.
func ApproveRequisition(c *fiber.Ctx) error {
	requisitionId := c.Locals("inputId").(int)

	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	var requisition model.Requisition

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&requisition, requisitionId).Error; err != nil {
			return err
		}
		if requisition.Status != constants.REQUISITION_PENDING {
			return helper.ErrIllegalTransition
		}

		for _, line := range requisition.Items {
			reason := fmt.Sprintf("requisition #%d for %s", requisition.ID, requisition.Station)
			if err := helper.RecordMovement(tx, line.IngredientID, -line.Quantity, constants.MOVEMENT_OUT, reason, nil); err != nil {
				return err
			}
		}

		now := time.Now()
		return tx.Model(&requisition).Updates(map[string]interface{}{
			"status":      constants.REQUISITION_APPROVED,
			"approved_by": claim.AccountId,
			"approved_at": now,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		if errors.Is(err, helper.ErrIllegalTransition) {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Requisition is not pending", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.Preload("Items.Ingredient").First(&requisition, requisition.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, requisition)
}

func RejectRequisition(c *fiber.Ctx) error {
	requisitionId := c.Locals("inputId").(int)

	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var requisition model.Requisition
	if err := database.DB.First(&requisition, requisitionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if requisition.Status != constants.REQUISITION_PENDING {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Requisition is not pending", nil)
	}

	now := time.Now()
	if err := database.DB.Model(&requisition).Updates(map[string]interface{}{
		"status":      constants.REQUISITION_REJECTED,
		"approved_by": claim.AccountId,
		"approved_at": now,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, requisition)
}
