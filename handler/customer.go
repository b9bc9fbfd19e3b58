package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetCustomers(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterCustomer
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	query := db.Model(&model.Customer{}).Order("created_at desc")

	if filter.SearchKey != "" {
		query = query.Where("name ILIKE ? OR phone LIKE ?", "%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone = ?", filter.Phone)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	query.Count(&totalCount)

	var customers model.Customers
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       customers,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetCustomerById(c *fiber.Ctx) error {
	customerId := c.Locals("inputId").(int)

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func CreateCustomer(c *fiber.Ctx) error {
	input := c.Locals("inputCreateCustomer").(model.CreateCustomerInput)
	db := database.DB

	var existing model.Customer
	if err := db.Where("phone = ?", input.Phone).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Phone number already registered", nil, "phone")
	}

	newCustomer := new(model.Customer)
	copier.Copy(&newCustomer, &input)
	newCustomer.IsActive = true

	if err := db.Create(&newCustomer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCustomer)
}

func EditCustomer(c *fiber.Ctx) error {
	customerId := uint(c.Locals("inputId").(int))
	input := c.Locals("inputEditCustomer").(model.EditCustomerInput)
	db := database.DB

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	copier.Copy(&customer, &input)

	if err := db.Model(&model.Customer{DTO: model.DTO{ID: customerId}}).Updates(customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.First(&customer, customerId)

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func DeleteCustomer(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Model(&model.Customer{}).
		Where("id IN ?", input.IDs).
		Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deactivated": len(input.IDs)})
}

// GetCustomerOrders lists a customer's order history, newest first.
func GetCustomerOrders(c *fiber.Ctx) error {
	customerId := c.Locals("inputId").(int)

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var orders []model.Order
	if err := database.DB.
		Preload("Items.MenuItem").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}
