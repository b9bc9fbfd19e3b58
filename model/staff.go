package model

import "time"

type Account struct {
	DTO
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`
}

type Staff struct {
	DTO
	AccountId uint       `json:"accountId"`
	Account   Account    `json:"account"`
	FullName  string     `gorm:"not null" json:"fullName"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Position  string     `json:"position"`
	Salary    float64    `json:"salary"`
	JoinedAt  *time.Time `json:"joinedAt,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`
}

type LoginInput struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
}

type CreateStaffInput struct {
	Username string  `validate:"required" json:"username"`
	Password string  `validate:"required,min=6" json:"password"`
	Role     string  `json:"role"`
	FullName string  `validate:"required" json:"fullName"`
	Phone    string  `json:"phone"`
	Email    string  `validate:"omitempty,email" json:"email"`
	Position string  `json:"position"`
	Salary   float64 `validate:"gte=0" json:"salary"`
}

type EditStaffInput struct {
	FullName *string  `json:"fullName"`
	Phone    *string  `json:"phone"`
	Email    *string  `validate:"omitempty,email" json:"email"`
	Position *string  `json:"position"`
	Salary   *float64 `validate:"omitempty,gte=0" json:"salary"`
}

type FilterStaff struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Role      string `json:"role"`
	Active    *bool  `json:"active"`
}
