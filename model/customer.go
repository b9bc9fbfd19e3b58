package model

type Customer struct {
	DTO
	Name          string `gorm:"not null" json:"name"`
	Phone         string `gorm:"index;not null" json:"phone"` // natural lookup key at order intake
	Email         string `json:"email"`
	LoyaltyPoints int    `gorm:"default:0" json:"loyaltyPoints"`
	VisitCount    int    `gorm:"default:0" json:"visitCount"`
	IsActive      bool   `gorm:"default:true" json:"isActive"`
}

type Customers []Customer

type CreateCustomerInput struct {
	Name  string `validate:"required" json:"name"`
	Phone string `validate:"required" json:"phone"`
	Email string `validate:"omitempty,email" json:"email"`
}

type EditCustomerInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `validate:"omitempty,email" json:"email"`
}

type FilterCustomer struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Phone     string `json:"phone"`
	Active    *bool  `json:"active"`
}
