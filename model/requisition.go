package model

import "time"

// Requisition: internal stock request from a station (kitchen, bar...) to the store.
// Approving one deducts ingredient stock with ledger entries.
type Requisition struct {
	DTO
	RequestedBy uint              `json:"requestedBy"`
	Station     string            `json:"station"`
	Status      string            `gorm:"default:PENDING" json:"status"`
	Note        string            `json:"note"`
	Items       []RequisitionItem `gorm:"foreignKey:RequisitionID" json:"items"`
	ApprovedBy  *uint             `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time        `json:"approvedAt,omitempty"`
}

type RequisitionItem struct {
	DTO
	RequisitionID uint       `gorm:"index;not null" json:"requisitionId"`
	IngredientID  uint       `gorm:"not null" json:"ingredientId"`
	Ingredient    Ingredient `json:"ingredient"`
	Quantity      float64    `gorm:"not null" json:"quantity"`
}

type CreateRequisitionInput struct {
	Station string                       `validate:"required" json:"station"`
	Note    string                       `json:"note"`
	Items   []CreateRequisitionItemInput `validate:"required,min=1,dive" json:"items"`
}

type CreateRequisitionItemInput struct {
	IngredientId uint    `validate:"required" json:"ingredientId"`
	Quantity     float64 `validate:"required,gt=0" json:"quantity"`
}
