package domain

type Country struct {
	ID        string `json:"id"`
	NameEn    string `json:"name_en"`
	NameAr    string `json:"name_ar"`
	Code      string `json:"code"`
	PhoneCode string `json:"phone_code,omitempty"`
	Active    bool   `json:"active"`
}

type CountryInput struct {
	NameEn    string `json:"name_en" validate:"required"`
	NameAr    string `json:"name_ar" validate:"required"`
	Code      string `json:"code" validate:"required,len=2,alpha"`
	PhoneCode string `json:"phone_code,omitempty" validate:"omitempty,startswith=+"`
	Active    *bool  `json:"active,omitempty"`
}
