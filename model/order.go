package model

import "time"

type Order struct {
	DTO
	OrderNumber string    `gorm:"unique;size:20" json:"orderNumber"` // ORD-0001
	CustomerID  *uint     `json:"customerId,omitempty"`              // nil for walk-in guests
	Customer    *Customer `json:"customer,omitempty"`
	TableID     *uint     `json:"tableId,omitempty"`
	Table       *Table    `json:"table,omitempty"`
	TotalAmount float64   `json:"totalAmount"` // frozen at creation, never recomputed
	Status      string    `gorm:"default:PENDING" json:"status"`
	Note        string    `json:"note"`
	// Set once when stock is deducted; guards against double deduction when
	// PREPARING is re-entered.
	StockDeductedAt *time.Time  `json:"stockDeductedAt,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedBy       uint        `json:"createdBy"`
}

type OrderItem struct {
	DTO
	OrderID    uint     `gorm:"index;not null" json:"orderId"`
	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	// Price per unit at order time. Decoupled from later menu price edits.
	Price float64 `gorm:"not null" json:"price"`
}

type CreateOrderInput struct {
	Items         []OrderLineInput `validate:"required,min=1,dive" json:"items"`
	TableId       *uint            `json:"tableId"`
	CustomerId    *uint            `json:"customerId"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	Note          string           `json:"note"`
}

type OrderLineInput struct {
	MenuItemId uint    `validate:"required" json:"menuItemId"`
	Quantity   int     `validate:"required,gt=0" json:"quantity"`
	Price      float64 `validate:"gte=0" json:"price"`
}

type UpdateOrderStatusInput struct {
	Status string `validate:"required" json:"status"`
}

type FilterOrder struct {
	Pagination
	Status  string `json:"status"`
	TableId *uint  `json:"tableId"`
	Date    string `json:"date"` // YYYY-MM-DD
}
