package domain

type Category struct {
	ID       string `json:"id"`
	NameEn   string `json:"name_en"`
	NameAr   string `json:"name_ar"`
	CourseID string `json:"course_id"`
	Active   bool   `json:"active"`
}

type CategoryInput struct {
	NameEn   string `json:"name_en" validate:"required"`
	NameAr   string `json:"name_ar" validate:"required"`
	CourseID string `json:"course_id" validate:"required"`
	Active   *bool  `json:"active,omitempty"`
}

type SubCategory struct {
	ID         string `json:"id"`
	NameEn     string `json:"name_en"`
	NameAr     string `json:"name_ar"`
	CategoryID string `json:"category_id"`
	Active     bool   `json:"active"`
}

type SubCategoryInput struct {
	NameEn     string `json:"name_en" validate:"required"`
	NameAr     string `json:"name_ar" validate:"required"`
	CategoryID string `json:"category_id" validate:"required"`
	Active     *bool  `json:"active,omitempty"`
}
