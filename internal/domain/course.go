package domain

import "time"

type Course struct {
	ID            string    `json:"id"`
	TitleEn       string    `json:"title_en"`
	TitleAr       string    `json:"title_ar"`
	DescriptionEn string    `json:"description_en"`
	DescriptionAr string    `json:"description_ar"`
	Image         string    `json:"image"`
	Price         float64   `json:"price"`
	SpecialtyID   string    `json:"specialty_id,omitempty"`
	AdminID       string    `json:"admin_id,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CourseInput struct {
	TitleEn       string  `json:"title_en" validate:"required,max=255"`
	TitleAr       string  `json:"title_ar" validate:"required,max=255"`
	DescriptionEn string  `json:"description_en" validate:"required"`
	DescriptionAr string  `json:"description_ar" validate:"required"`
	Image         string  `json:"image,omitempty" validate:"omitempty,url"`
	Price         float64 `json:"price" validate:"gte=0"`
	SpecialtyID   string  `json:"specialty_id,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}
