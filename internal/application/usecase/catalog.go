package usecase

import (
	"courseadmin/internal/client"
	"courseadmin/internal/domain"
	"courseadmin/internal/infrastructure/cache"

	"github.com/rs/zerolog"
)

// Catalog holds one service per dashboard resource.
type Catalog struct {
	Courses       *ResourceService[domain.Course]
	Lectures      *ResourceService[domain.Lecture]
	Notes         *ResourceService[domain.Note]
	FlashCards    *ResourceService[domain.FlashCard]
	Questions     *ResourceService[domain.Question]
	Users         *ResourceService[domain.User]
	Countries     *ResourceService[domain.Country]
	Offers        *ResourceService[domain.Offer]
	Events        *ResourceService[domain.Event]
	Categories    *ResourceService[domain.Category]
	SubCategories *ResourceService[domain.SubCategory]
	Specialties   *ResourceService[domain.Specialty]
	HostRequests  *ResourceService[domain.HostCourseRequest]
}

func NewCatalog(api *client.API, qc *cache.QueryCache, audit *AuditUseCase, logger zerolog.Logger) *Catalog {
	return &Catalog{
		Courses: NewResourceService(api.Courses, qc, audit, logger,
			WithDependents("categories", "lectures", "notes", "flashcards", "questions", "offers")),
		Lectures:   NewResourceService(api.Lectures, qc, audit, logger, WithCascadingFilters(), WithDependents("notes", "questions")),
		Notes:      NewResourceService(api.Notes, qc, audit, logger, WithCascadingFilters()),
		FlashCards: NewResourceService(api.FlashCards, qc, audit, logger, WithCascadingFilters()),
		Questions:  NewResourceService(api.Questions, qc, audit, logger, WithCascadingFilters()),
		Users:      NewResourceService(api.Users, qc, audit, logger),
		Countries:  NewResourceService(api.Countries, qc, audit, logger, WithDependents("users")),
		Offers:     NewResourceService(api.Offers, qc, audit, logger),
		Events:     NewResourceService(api.Events, qc, audit, logger),
		Categories: NewResourceService(api.Categories, qc, audit, logger,
			WithDependents("subcategories", "lectures", "notes", "flashcards", "questions")),
		SubCategories: NewResourceService(api.SubCategories, qc, audit, logger,
			WithDependents("lectures", "notes", "flashcards", "questions")),
		Specialties:  NewResourceService(api.Specialties, qc, audit, logger, WithDependents("courses")),
		HostRequests: NewResourceService(api.HostRequests, qc, audit, logger),
	}
}
