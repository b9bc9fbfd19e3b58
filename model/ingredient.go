package model

type Ingredient struct {
	DTO
	Name         string  `gorm:"unique;not null" json:"name"`
	Unit         string  `gorm:"not null" json:"unit"` // kg, l, pcs...
	CurrentStock float64 `gorm:"default:0" json:"currentStock"`
	MinStock     float64 `gorm:"default:0" json:"minStock"`
	UnitPrice    float64 `gorm:"default:0" json:"unitPrice"`
}

// StockMovement is an append-only ledger entry. Current stock lives on Ingredient;
// the ledger is the audit trail, never the source of truth.
type StockMovement struct {
	DTO
	IngredientID uint       `gorm:"index;not null" json:"ingredientId"`
	Ingredient   Ingredient `json:"ingredient"`
	Quantity     float64    `gorm:"not null" json:"quantity"` // positive = in, negative = out
	Type         string     `gorm:"not null" json:"type"`     // IN, OUT
	Reason       string     `json:"reason"`
	StockBefore  float64    `json:"stockBefore"`
	StockAfter   float64    `json:"stockAfter"`
	OrderID      *uint      `gorm:"index" json:"orderId,omitempty"`
}

type CreateIngredientInput struct {
	Name         string  `validate:"required" json:"name"`
	Unit         string  `validate:"required" json:"unit"`
	CurrentStock float64 `validate:"gte=0" json:"currentStock"`
	MinStock     float64 `validate:"gte=0" json:"minStock"`
	UnitPrice    float64 `validate:"gte=0" json:"unitPrice"`
}

type EditIngredientInput struct {
	Name      *string  `json:"name"`
	Unit      *string  `json:"unit"`
	MinStock  *float64 `validate:"omitempty,gte=0" json:"minStock"`
	UnitPrice *float64 `validate:"omitempty,gte=0" json:"unitPrice"`
}

// AdjustStockInput records a manual correction (spoilage, stocktake delta...).
type AdjustStockInput struct {
	Quantity float64 `validate:"required" json:"quantity"` // signed
	Reason   string  `validate:"required" json:"reason"`
}

type FilterIngredient struct {
	Pagination
	SearchKey string `json:"searchKey"`
	LowStock  *bool  `json:"lowStock"`
}
