package helper

import (
	"errors"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// ResolveCustomer returns the customer id for an order: an explicit id wins,
// otherwise the phone number is looked up and a customer is created on miss.
// Walk-in orders with neither stay anonymous (nil).
func ResolveCustomer(tx *gorm.DB, input model.CreateOrderInput) (*uint, error) {
	if input.CustomerId != nil {
		var customer model.Customer
		if err := tx.First(&customer, *input.CustomerId).Error; err != nil {
			return nil, err
		}
		return &customer.ID, nil
	}

	if input.CustomerPhone == "" {
		return nil, nil
	}

	var customer model.Customer
	err := tx.Where("phone = ?", input.CustomerPhone).First(&customer).Error
	if err == nil {
		return &customer.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := input.CustomerName
	if name == "" {
		name = "Guest"
	}
	customer = model.Customer{
		Name:  name,
		Phone: input.CustomerPhone,
	}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer.ID, nil
}
