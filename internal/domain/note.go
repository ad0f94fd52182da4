package domain

import "time"

type Note struct {
	ID            string    `json:"id"`
	TitleEn       string    `json:"title_en"`
	TitleAr       string    `json:"title_ar"`
	ContentEn     string    `json:"content_en"`
	ContentAr     string    `json:"content_ar"`
	FileURL       string    `json:"file_url,omitempty"`
	LectureID     string    `json:"lecture_id,omitempty"`
	CourseID      string    `json:"course_id"`
	CategoryID    string    `json:"category_id,omitempty"`
	SubCategoryID string    `json:"subcategory_id,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type NoteInput struct {
	TitleEn       string `json:"title_en" validate:"required,max=255"`
	TitleAr       string `json:"title_ar" validate:"required,max=255"`
	ContentEn     string `json:"content_en" validate:"required"`
	ContentAr     string `json:"content_ar" validate:"required"`
	FileURL       string `json:"file_url,omitempty" validate:"omitempty,url"`
	LectureID     string `json:"lecture_id,omitempty"`
	CourseID      string `json:"course_id" validate:"required"`
	CategoryID    string `json:"category_id" validate:"required"`
	SubCategoryID string `json:"subcategory_id,omitempty"`
	Active        *bool  `json:"active,omitempty"`
}
