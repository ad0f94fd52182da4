package domain

import "time"

type Event struct {
	ID            string    `json:"id"`
	TitleEn       string    `json:"title_en"`
	TitleAr       string    `json:"title_ar"`
	DescriptionEn string    `json:"description_en"`
	DescriptionAr string    `json:"description_ar"`
	Location      string    `json:"location,omitempty"`
	Image         string    `json:"image,omitempty"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	Active        bool      `json:"active"`
}

type EventInput struct {
	TitleEn       string    `json:"title_en" validate:"required,max=255"`
	TitleAr       string    `json:"title_ar" validate:"required,max=255"`
	DescriptionEn string    `json:"description_en"`
	DescriptionAr string    `json:"description_ar"`
	Location      string    `json:"location,omitempty"`
	Image         string    `json:"image,omitempty" validate:"omitempty,url"`
	StartsAt      time.Time `json:"starts_at" validate:"required"`
	EndsAt        time.Time `json:"ends_at" validate:"required"`
	Active        *bool     `json:"active,omitempty"`
}
