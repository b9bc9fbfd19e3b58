package model

type Table struct {
	DTO
	Number         int    `gorm:"unique;not null" json:"number"`
	Capacity       int    `gorm:"not null" json:"capacity"`
	Status         string `gorm:"default:AVAILABLE" json:"status"`
	CurrentOrderID *uint  `json:"currentOrderId,omitempty"`
}

type CreateTableInput struct {
	Number   int `validate:"required,gt=0" json:"number"`
	Capacity int `validate:"required,gt=0" json:"capacity"`
}

type EditTableInput struct {
	Capacity *int    `validate:"omitempty,gt=0" json:"capacity"`
	Status   *string `json:"status"`
}
