package domain

import "time"

const (
	PageAboutUs       = "about-us"
	PageTerms         = "terms"
	PagePrivacyPolicy = "privacy-policy"
)

func IsContentPage(slug string) bool {
	switch slug {
	case PageAboutUs, PageTerms, PagePrivacyPolicy:
		return true
	}
	return false
}

type PageContent struct {
	Slug      string    `json:"slug"`
	ContentEn string    `json:"content_en"`
	ContentAr string    `json:"content_ar"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PageContentInput struct {
	ContentEn string `json:"content_en" validate:"required"`
	ContentAr string `json:"content_ar" validate:"required"`
}
