package model

import "time"

// Bill freezes the settled amounts for one order. Like Order.TotalAmount it is
// never recomputed after creation.
type Bill struct {
	DTO
	PublicCode     string     `gorm:"unique;size:24" json:"publicCode"` // BILL-XXXXXXXX
	OrderID        uint       `gorm:"unique;not null" json:"orderId"`
	Order          Order      `json:"order"`
	Subtotal       float64    `json:"subtotal"`
	DiscountAmount float64    `json:"discountAmount"`
	ServiceCharge  float64    `json:"serviceCharge"`
	TaxableAmount  float64    `json:"taxableAmount"`
	VatAmount      float64    `json:"vatAmount"`
	TotalAmount    float64    `json:"totalAmount"`
	PromotionID    *uint      `json:"promotionId,omitempty"`
	Promotion      *Promotion `json:"promotion,omitempty"`
	PaymentMethod  string     `json:"paymentMethod"` // CASH, CARD, WALLET
	SettledBy      uint       `json:"settledBy"`
	SettledAt      time.Time  `json:"settledAt"`
}

type SettleBillInput struct {
	PromotionCode string `json:"promotionCode"`
	PaymentMethod string `validate:"required" json:"paymentMethod"`
}

// BillAmounts is the arithmetic part of a bill, shared by settle and preview.
type BillAmounts struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	ServiceCharge  float64 `json:"serviceCharge"`
	TaxableAmount  float64 `json:"taxableAmount"`
	VatAmount      float64 `json:"vatAmount"`
	TotalAmount    float64 `json:"totalAmount"`
}
