package helper

import (
	"math"
	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"strconv"
	"time"
)

// Default Nepali restaurant billing: 10% service charge, then 13% VAT on the
// post-service-charge taxable base.
const (
	DefaultServiceChargeRate = 0.10
	DefaultVatRate           = 0.13
)

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ServiceChargeRate() float64 {
	if v, err := strconv.ParseFloat(config.Config("SERVICE_CHARGE_RATE"), 64); err == nil {
		return v
	}
	return DefaultServiceChargeRate
}

func VatRate() float64 {
	if v, err := strconv.ParseFloat(config.Config("VAT_RATE"), 64); err == nil {
		return v
	}
	return DefaultVatRate
}

// PromotionDiscount returns the discount a promotion grants on a subtotal at a
// given moment; zero when inactive or outside its validity window. A fixed
// discount never exceeds the subtotal.
func PromotionDiscount(promo *model.Promotion, subtotal float64, at time.Time) float64 {
	if promo == nil || !promo.Active {
		return 0
	}
	if at.Before(promo.StartsAt) || at.After(promo.EndsAt) {
		return 0
	}

	switch promo.Type {
	case constants.PROMO_PERCENT:
		return Round2(subtotal * promo.Value / 100)
	case constants.PROMO_FIXED:
		if promo.Value > subtotal {
			return subtotal
		}
		return promo.Value
	}
	return 0
}

// CalculateBillAmounts: subtotal from the frozen order-item snapshots, promo
// discount, service charge on the discounted base, VAT on the taxable amount.
func CalculateBillAmounts(items []model.OrderItem, promo *model.Promotion, serviceRate, vatRate float64, at time.Time) model.BillAmounts {
	subtotal := 0.0
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.Price
	}
	subtotal = Round2(subtotal)

	discount := PromotionDiscount(promo, subtotal, at)
	base := subtotal - discount
	serviceCharge := Round2(base * serviceRate)
	taxable := Round2(base + serviceCharge)
	vat := Round2(taxable * vatRate)

	return model.BillAmounts{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		ServiceCharge:  serviceCharge,
		TaxableAmount:  taxable,
		VatAmount:      vat,
		TotalAmount:    Round2(taxable + vat),
	}
}
