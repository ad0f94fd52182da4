package domain

import "time"

type Offer struct {
	ID              string     `json:"id"`
	TitleEn         string     `json:"title_en"`
	TitleAr         string     `json:"title_ar"`
	DescriptionEn   string     `json:"description_en"`
	DescriptionAr   string     `json:"description_ar"`
	DiscountPercent int        `json:"discount_percent"`
	CourseID        string     `json:"course_id,omitempty"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	Active          bool       `json:"active"`
}

type OfferInput struct {
	TitleEn         string     `json:"title_en" validate:"required,max=255"`
	TitleAr         string     `json:"title_ar" validate:"required,max=255"`
	DescriptionEn   string     `json:"description_en"`
	DescriptionAr   string     `json:"description_ar"`
	DiscountPercent int        `json:"discount_percent" validate:"required,min=1,max=100"`
	CourseID        string     `json:"course_id,omitempty"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	Active          *bool      `json:"active,omitempty"`
}
