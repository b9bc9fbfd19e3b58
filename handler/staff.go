package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetStaffs(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterStaff
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	query := db.Model(&model.Staff{}).Preload("Account").Order("full_name asc")

	if filter.SearchKey != "" {
		query = query.Where("full_name ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Role != "" {
		query = query.Joins("JOIN accounts ON accounts.id = staffs.account_id").
			Where("accounts.role = ?", strings.ToUpper(filter.Role))
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	query.Count(&totalCount)

	var staffs []model.Staff
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).Find(&staffs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       staffs,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetStaffById(c *fiber.Ctx) error {
	staffId := c.Locals("inputId").(int)

	var staff model.Staff
	if err := database.DB.Preload("Account").First(&staff, staffId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, staff)
}

func CreateStaff(c *fiber.Ctx) error {
	staffInput := c.Locals("inputCreateStaff").(model.CreateStaffInput)
	db := database.DB

	var existing model.Account
	if err := db.Where("username = ?", staffInput.Username).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Username already taken", nil, "username")
	}

	hash, err := helper.HashPassword(staffInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}

	role := strings.ToUpper(staffInput.Role)
	if role == "" {
		role = constants.ROLE_WAITER
	}

	var newStaff model.Staff
	err = db.Transaction(func(tx *gorm.DB) error {
		account := model.Account{
			Username: staffInput.Username,
			Password: hash,
			Role:     role,
			Active:   true,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		copier.Copy(&newStaff, &staffInput)
		newStaff.AccountId = account.ID
		newStaff.IsActive = true
		return tx.Create(&newStaff).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Account").First(&newStaff, newStaff.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, newStaff)
}

func EditStaff(c *fiber.Ctx) error {
	staffId := uint(c.Locals("inputId").(int))
	staffInput := c.Locals("inputEditStaff").(model.EditStaffInput)

	tx := database.DB.Begin()

	var staff model.Staff
	if err := tx.First(&staff, staffId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	copier.Copy(&staff, &staffInput)

	if err := tx.Model(&model.Staff{DTO: model.DTO{ID: staffId}}).Updates(staff).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	tx.Preload("Account").First(&staff, staffId)

	tx.Commit()
	return utils.SuccessResponse(c, fiber.StatusOK, staff)
}

func ActiveStaff(c *fiber.Ctx) error {
	staffId := c.Locals("inputId").(int)
	isActive := c.Params("isActive") == "true"

	var staff model.Staff
	if err := database.DB.First(&staff, staffId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if err := database.DB.Model(&staff).Update("is_active", isActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, staff)
}

func AdminChangePassword(c *fiber.Ctx) error {
	input := c.Locals("inputChangePassword").(model.AdminChangePassword)
	db := database.DB

	var account model.Account
	if err := db.First(&account, input.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}

	if err := db.Model(&account).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}
