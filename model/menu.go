package model

type MenuCategory struct {
	DTO
	Name        string `gorm:"unique;not null" json:"name"`
	Description string `json:"description"`
}

type MenuItem struct {
	DTO
	Name        string       `gorm:"not null" json:"name"`
	Slug        string       `gorm:"unique;size:120" json:"slug"`
	CategoryID  uint         `json:"categoryId"`
	Category    MenuCategory `json:"category"`
	Price       float64      `gorm:"not null" json:"price"`
	PrepMinutes int          `json:"prepMinutes"`
	// Finished-good stock: pre-prepared units sellable without touching ingredients.
	CurrentStock float64  `gorm:"default:0" json:"currentStock"`
	ImageUrl     *string  `json:"imageUrl,omitempty"`
	IsAvailable  bool     `gorm:"default:true" json:"isAvailable"`
	Recipes      []Recipe `gorm:"foreignKey:MenuItemID" json:"recipes,omitempty"`
}

// Recipe maps one menu item to the quantity of one ingredient consumed per unit.
type Recipe struct {
	DTO
	MenuItemID   uint       `gorm:"index;not null" json:"menuItemId"`
	IngredientID uint       `gorm:"not null" json:"ingredientId"`
	Ingredient   Ingredient `json:"ingredient"`
	Quantity     float64    `gorm:"not null" json:"quantity"`
}

type CreateMenuItemInput struct {
	Name        string            `validate:"required" json:"name"`
	CategoryId  uint              `validate:"required" json:"categoryId"`
	Price       float64           `validate:"required,gte=0" json:"price"`
	PrepMinutes int               `validate:"gte=0" json:"prepMinutes"`
	ImageUrl    *string           `json:"imageUrl"`
	Recipes     []RecipeLineInput `validate:"dive" json:"recipes"`
}

type RecipeLineInput struct {
	IngredientId uint    `validate:"required" json:"ingredientId"`
	Quantity     float64 `validate:"required,gt=0" json:"quantity"`
}

type EditMenuItemInput struct {
	Name        *string  `json:"name"`
	CategoryId  *uint    `json:"categoryId"`
	Price       *float64 `validate:"omitempty,gte=0" json:"price"`
	PrepMinutes *int     `validate:"omitempty,gte=0" json:"prepMinutes"`
	ImageUrl    *string  `json:"imageUrl"`
	IsAvailable *bool    `json:"isAvailable"`
}

type ProduceMenuItemInput struct {
	Quantity float64 `validate:"required,gt=0" json:"quantity"`
}

type CreateMenuCategoryInput struct {
	Name        string `validate:"required" json:"name"`
	Description string `json:"description"`
}

type FilterMenuItem struct {
	Pagination
	SearchKey  string `json:"searchKey"`
	CategoryId *uint  `json:"categoryId"`
	Available  *bool  `json:"available"`
}
