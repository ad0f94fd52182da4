package domain

type Specialty struct {
	ID     string `json:"id"`
	NameEn string `json:"name_en"`
	NameAr string `json:"name_ar"`
	Active bool   `json:"active"`
}

type SpecialtyInput struct {
	NameEn string `json:"name_en" validate:"required"`
	NameAr string `json:"name_ar" validate:"required"`
	Active *bool  `json:"active,omitempty"`
}
