package domain

import "time"

type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Role        string     `json:"role"`
	CountryID   string     `json:"country_id,omitempty"`
	Active      bool       `json:"active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type UserInput struct {
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,e164"`
	Role      string `json:"role" validate:"required,oneof=student instructor admin"`
	CountryID string `json:"country_id,omitempty"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=8"`
	Active    *bool  `json:"active,omitempty"`
}
