package domain

import "time"

type FlashCard struct {
	ID            string    `json:"id"`
	FrontEn       string    `json:"front_en"`
	FrontAr       string    `json:"front_ar"`
	BackEn        string    `json:"back_en"`
	BackAr        string    `json:"back_ar"`
	CourseID      string    `json:"course_id"`
	CategoryID    string    `json:"category_id,omitempty"`
	SubCategoryID string    `json:"subcategory_id,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type FlashCardInput struct {
	FrontEn       string `json:"front_en" validate:"required"`
	FrontAr       string `json:"front_ar" validate:"required"`
	BackEn        string `json:"back_en" validate:"required"`
	BackAr        string `json:"back_ar" validate:"required"`
	CourseID      string `json:"course_id" validate:"required"`
	CategoryID    string `json:"category_id" validate:"required"`
	SubCategoryID string `json:"subcategory_id,omitempty"`
	Active        *bool  `json:"active,omitempty"`
}
