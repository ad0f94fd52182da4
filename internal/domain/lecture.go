package domain

import "time"

type Lecture struct {
	ID              string    `json:"id"`
	TitleEn         string    `json:"title_en"`
	TitleAr         string    `json:"title_ar"`
	DescriptionEn   string    `json:"description_en"`
	DescriptionAr   string    `json:"description_ar"`
	VideoURL        string    `json:"video_url"`
	DurationMinutes int       `json:"duration_minutes"`
	Order           int       `json:"order"`
	CourseID        string    `json:"course_id"`
	CategoryID      string    `json:"category_id,omitempty"`
	SubCategoryID   string    `json:"subcategory_id,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type LectureInput struct {
	TitleEn         string `json:"title_en" validate:"required,max=255"`
	TitleAr         string `json:"title_ar" validate:"required,max=255"`
	DescriptionEn   string `json:"description_en"`
	DescriptionAr   string `json:"description_ar"`
	VideoURL        string `json:"video_url" validate:"required,url"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
	Order           int    `json:"order" validate:"gte=0"`
	CourseID        string `json:"course_id" validate:"required"`
	CategoryID      string `json:"category_id" validate:"required"`
	SubCategoryID   string `json:"subcategory_id,omitempty"`
	Active          *bool  `json:"active,omitempty"`
}
