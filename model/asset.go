package model

import "time"

type Asset struct {
	DTO
	Name         string     `gorm:"not null" json:"name"`
	Category     string     `json:"category"`
	Quantity     int        `gorm:"default:1" json:"quantity"`
	PurchaseCost float64    `json:"purchaseCost"`
	PurchasedAt  *time.Time `json:"purchasedAt,omitempty"`
	Location     string     `json:"location"`
	Notes        string     `json:"notes"`
}

type CreateAssetInput struct {
	Name         string     `validate:"required" json:"name"`
	Category     string     `json:"category"`
	Quantity     int        `validate:"gte=1" json:"quantity"`
	PurchaseCost float64    `validate:"gte=0" json:"purchaseCost"`
	PurchasedAt  *time.Time `json:"purchasedAt"`
	Location     string     `json:"location"`
	Notes        string     `json:"notes"`
}

type EditAssetInput struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Quantity *int    `validate:"omitempty,gte=0" json:"quantity"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}
