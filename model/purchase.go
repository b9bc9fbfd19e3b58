package model

import "time"

type Purchase struct {
	DTO
	SupplierName string         `gorm:"not null" json:"supplierName"`
	InvoiceNo    string         `json:"invoiceNo"`
	PurchasedAt  time.Time      `json:"purchasedAt"`
	TotalCost    float64        `json:"totalCost"`
	Items        []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items"`
	RecordedBy   uint           `json:"recordedBy"`
}

type PurchaseItem struct {
	DTO
	PurchaseID   uint       `gorm:"index;not null" json:"purchaseId"`
	IngredientID uint       `gorm:"not null" json:"ingredientId"`
	Ingredient   Ingredient `json:"ingredient"`
	Quantity     float64    `gorm:"not null" json:"quantity"`
	UnitCost     float64    `gorm:"not null" json:"unitCost"`
}

type CreatePurchaseInput struct {
	SupplierName string                    `validate:"required" json:"supplierName"`
	InvoiceNo    string                    `json:"invoiceNo"`
	PurchasedAt  *time.Time                `json:"purchasedAt"`
	Items        []CreatePurchaseItemInput `validate:"required,min=1,dive" json:"items"`
}

type CreatePurchaseItemInput struct {
	IngredientId uint    `validate:"required" json:"ingredientId"`
	Quantity     float64 `validate:"required,gt=0" json:"quantity"`
	UnitCost     float64 `validate:"gte=0" json:"unitCost"`
}

type FilterPurchase struct {
	Pagination
	SupplierName string `json:"supplierName"`
	From         string `json:"from"` // YYYY-MM-DD
	To           string `json:"to"`
}
