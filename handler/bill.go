package handler

import (
	"errors"
	"strings"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errAlreadyBilled = errors.New("order already billed")

func resolvePromotion(tx *gorm.DB, code string) (*model.Promotion, error) {
	if code == "" {
		return nil, nil
	}
	var promo model.Promotion
	if err := tx.Where("code = ?", strings.ToUpper(code)).First(&promo).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

// SettleBill closes an order: it freezes the amounts into a bill row, frees
// the table and credits loyalty points, all in one transaction.
func SettleBill(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(int)
	input := c.Locals("inputSettleBill").(model.SettleBillInput)
	claim, _, _ := helper.GetInfoAccountFromToken(c)

	db := database.DB
	var bill model.Bill

	err := db.Transaction(func(tx *gorm.DB) error {
		var order model.Order
		if err := tx.Preload("Items").Preload("Customer").First(&order, orderId).Error; err != nil {
			return err
		}
		if order.Status == constants.ORDER_CANCELLED {
			return helper.ErrIllegalTransition
		}

		var count int64
		tx.Model(&model.Bill{}).Where("order_id = ?", order.ID).Count(&count)
		if count > 0 {
			return errAlreadyBilled
		}

		promo, err := resolvePromotion(tx, input.PromotionCode)
		if err != nil {
			return err
		}

		now := time.Now()
		amounts := helper.CalculateBillAmounts(order.Items, promo, helper.ServiceChargeRate(), helper.VatRate(), now)

		bill = model.Bill{
			PublicCode:     "BILL-" + strings.ToUpper(uuid.New().String()[:8]),
			OrderID:        order.ID,
			Subtotal:       amounts.Subtotal,
			DiscountAmount: amounts.DiscountAmount,
			ServiceCharge:  amounts.ServiceCharge,
			TaxableAmount:  amounts.TaxableAmount,
			VatAmount:      amounts.VatAmount,
			TotalAmount:    amounts.TotalAmount,
			PaymentMethod:  strings.ToUpper(input.PaymentMethod),
			SettledBy:      claim.AccountId,
			SettledAt:      now,
		}
		if promo != nil {
			bill.PromotionID = &promo.ID
		}
		if err := tx.Create(&bill).Error; err != nil {
			return err
		}

		if order.TableID != nil {
			if err := tx.Model(&model.Table{}).Where("id = ?", *order.TableID).
				Updates(map[string]interface{}{
					"status":           constants.TABLE_AVAILABLE,
					"current_order_id": nil,
				}).Error; err != nil {
				return err
			}
		}

		if order.CustomerID != nil {
			points := int(amounts.TotalAmount / 10)
			if err := tx.Model(&model.Customer{}).Where("id = ?", *order.CustomerID).
				Updates(map[string]interface{}{
					"loyalty_points": gorm.Expr("loyalty_points + ?", points),
					"visit_count":    gorm.Expr("visit_count + ?", 1),
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		if errors.Is(err, helper.ErrIllegalTransition) {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.ILLEGAL_TRANSITION, err)
		}
		if errors.Is(err, errAlreadyBilled) {
			return utils.ErrorResponse(c, fiber.StatusConflict, errAlreadyBilled.Error(), err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	database.DB.Preload("Order.Items.MenuItem").Preload("Order.Customer").Preload("Promotion").First(&bill, bill.ID)

	if bill.Order.Customer != nil && bill.Order.Customer.Email != "" {
		utils.SendReceiptEmail(bill.Order.Customer.Email, utils.ReceiptData{
			BillCode:      bill.PublicCode,
			OrderNumber:   bill.Order.OrderNumber,
			CustomerName:  bill.Order.Customer.Name,
			Subtotal:      bill.Subtotal,
			Discount:      bill.DiscountAmount,
			ServiceCharge: bill.ServiceCharge,
			Vat:           bill.VatAmount,
			Total:         bill.TotalAmount,
			PaymentMethod: bill.PaymentMethod,
			SettledAt:     bill.SettledAt.Format("2006-01-02 15:04"),
		})
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, bill)
}

// PreviewBill computes the amounts without writing anything, so the cashier
// can show the customer a total before choosing a payment method.
func PreviewBill(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.Preload("Items").First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	promo, err := resolvePromotion(database.DB, c.Query("promotionCode"))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	amounts := helper.CalculateBillAmounts(order.Items, promo, helper.ServiceChargeRate(), helper.VatRate(), time.Now())

	return utils.SuccessResponse(c, fiber.StatusOK, amounts)
}

func GetBills(c *fiber.Ctx) error {
	query := database.DB.Model(&model.Bill{}).
		Preload("Order").
		Preload("Promotion").
		Order("settled_at desc")

	if from := c.Query("from"); from != "" {
		if day := utils.ParseDay(from); !day.IsZero() {
			query = query.Where("settled_at >= ?", day)
		}
	}
	if to := c.Query("to"); to != "" {
		if day := utils.ParseDay(to); !day.IsZero() {
			query = query.Where("settled_at < ?", day.AddDate(0, 0, 1))
		}
	}

	var bills []model.Bill
	if err := query.Find(&bills).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bills)
}

func GetBillByOrder(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(int)

	var bill model.Bill
	err := database.DB.Preload("Order.Items.MenuItem").Preload("Promotion").
		Where("order_id = ?", orderId).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bill)
}
