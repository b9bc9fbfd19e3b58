package model

import "time"

type Promotion struct {
	DTO
	Code        string    `gorm:"unique;not null" json:"code"`
	Description string    `json:"description"`
	Type        string    `gorm:"not null" json:"type"` // PERCENT, FIXED
	Value       float64   `gorm:"not null" json:"value"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Active      bool      `gorm:"default:true" json:"active"`
}

type CreatePromotionInput struct {
	Code        string    `validate:"required" json:"code"`
	Description string    `json:"description"`
	Type        string    `validate:"required" json:"type"`
	Value       float64   `validate:"required,gt=0" json:"value"`
	StartsAt    time.Time `validate:"required" json:"startsAt"`
	EndsAt      time.Time `validate:"required" json:"endsAt"`
}

type EditPromotionInput struct {
	Description *string    `json:"description"`
	Value       *float64   `validate:"omitempty,gt=0" json:"value"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	Active      *bool      `json:"active"`
}
