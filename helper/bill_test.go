package helper

import (
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"
)

func activePromo(promoType string, value float64) *model.Promotion {
	now := time.Now()
	return &model.Promotion{
		Code:     "TEST",
		Type:     promoType,
		Value:    value,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
		Active:   true,
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 10.00, 10.00},
		{"roundsUp", 10.005, 10.01},
		{"roundsDown", 10.004, 10.00},
		{"negative", -1.239, -1.24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.in); !almostEqual(got, tt.want) {
				t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPromotionDiscount(t *testing.T) {
	now := time.Now()

	expired := activePromo(constants.PROMO_PERCENT, 10)
	expired.StartsAt = now.Add(-48 * time.Hour)
	expired.EndsAt = now.Add(-24 * time.Hour)

	notStarted := activePromo(constants.PROMO_PERCENT, 10)
	notStarted.StartsAt = now.Add(24 * time.Hour)
	notStarted.EndsAt = now.Add(48 * time.Hour)

	inactive := activePromo(constants.PROMO_PERCENT, 10)
	inactive.Active = false

	tests := []struct {
		name     string
		promo    *model.Promotion
		subtotal float64
		want     float64
	}{
		{"nilPromo", nil, 1000, 0},
		{"percent", activePromo(constants.PROMO_PERCENT, 10), 1000, 100},
		{"fixed", activePromo(constants.PROMO_FIXED, 150), 1000, 150},
		{"fixedCappedAtSubtotal", activePromo(constants.PROMO_FIXED, 500), 300, 300},
		{"expired", expired, 1000, 0},
		{"notStartedYet", notStarted, 1000, 0},
		{"inactive", inactive, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PromotionDiscount(tt.promo, tt.subtotal, now); !almostEqual(got, tt.want) {
				t.Errorf("PromotionDiscount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateBillAmounts(t *testing.T) {
	now := time.Now()
	items := []model.OrderItem{
		{Quantity: 2, Price: 300},
		{Quantity: 1, Price: 400},
	}

	tests := []struct {
		name  string
		promo *model.Promotion
		want  model.BillAmounts
	}{
		{
			name:  "noPromotion",
			promo: nil,
			want: model.BillAmounts{
				Subtotal:       1000,
				DiscountAmount: 0,
				ServiceCharge:  100,
				TaxableAmount:  1100,
				VatAmount:      143,
				TotalAmount:    1243,
			},
		},
		{
			name:  "percentPromotion",
			promo: activePromo(constants.PROMO_PERCENT, 10),
			want: model.BillAmounts{
				Subtotal:       1000,
				DiscountAmount: 100,
				ServiceCharge:  90,
				TaxableAmount:  990,
				VatAmount:      128.70,
				TotalAmount:    1118.70,
			},
		},
		{
			name:  "fixedPromotion",
			promo: activePromo(constants.PROMO_FIXED, 200),
			want: model.BillAmounts{
				Subtotal:       1000,
				DiscountAmount: 200,
				ServiceCharge:  80,
				TaxableAmount:  880,
				VatAmount:      114.40,
				TotalAmount:    994.40,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBillAmounts(items, tt.promo, DefaultServiceChargeRate, DefaultVatRate, now)
			if !almostEqual(got.Subtotal, tt.want.Subtotal) {
				t.Errorf("subtotal = %v, want %v", got.Subtotal, tt.want.Subtotal)
			}
			if !almostEqual(got.DiscountAmount, tt.want.DiscountAmount) {
				t.Errorf("discount = %v, want %v", got.DiscountAmount, tt.want.DiscountAmount)
			}
			if !almostEqual(got.ServiceCharge, tt.want.ServiceCharge) {
				t.Errorf("serviceCharge = %v, want %v", got.ServiceCharge, tt.want.ServiceCharge)
			}
			if !almostEqual(got.TaxableAmount, tt.want.TaxableAmount) {
				t.Errorf("taxable = %v, want %v", got.TaxableAmount, tt.want.TaxableAmount)
			}
			if !almostEqual(got.VatAmount, tt.want.VatAmount) {
				t.Errorf("vat = %v, want %v", got.VatAmount, tt.want.VatAmount)
			}
			if !almostEqual(got.TotalAmount, tt.want.TotalAmount) {
				t.Errorf("total = %v, want %v", got.TotalAmount, tt.want.TotalAmount)
			}
		})
	}
}
