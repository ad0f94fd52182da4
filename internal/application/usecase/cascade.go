package usecase

import (
	"context"
	"strings"

	"courseadmin/internal/domain"
)

// parentFilter maps each dependent filter to the one it needs.
var parentFilter = map[string]string{
	"category_id":    "course_id",
	"subcategory_id": "category_id",
}

// NormalizeFilters drops a child filter whose parent is not selected, so a
// stale subcategory never narrows a list after its course was cleared.
func NormalizeFilters(filters map[string]string) map[string]string {
	out := make(map[string]string, len(filters))
	for k, v := range filters {
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	// subcategory -> category -> course, от листа к корню
	for _, child := range []string{"subcategory_id", "category_id"} {
		if _, ok := out[child]; !ok {
			continue
		}
		if !hasChain(out, child) {
			delete(out, child)
		}
	}
	return out
}

func hasChain(filters map[string]string, key string) bool {
	for {
		parent, ok := parentFilter[key]
		if !ok {
			return true
		}
		if filters[parent] == "" {
			return false
		}
		key = parent
	}
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options backs one dropdown. A disabled dropdown has no items and was never
// fetched.
type Options struct {
	Enabled bool     `json:"enabled"`
	Items   []Option `json:"items"`
}

func disabledOptions() Options {
	return Options{Enabled: false, Items: []Option{}}
}

func label(en, ar string) string {
	if s := strings.TrimSpace(en); s != "" {
		return s
	}
	return strings.TrimSpace(ar)
}

type CascadeUseCase struct {
	courses       *ResourceService[domain.Course]
	categories    *ResourceService[domain.Category]
	subcategories *ResourceService[domain.SubCategory]
	specialties   *ResourceService[domain.Specialty]
	countries     *ResourceService[domain.Country]
}

func NewCascadeUseCase(
	courses *ResourceService[domain.Course],
	categories *ResourceService[domain.Category],
	subcategories *ResourceService[domain.SubCategory],
	specialties *ResourceService[domain.Specialty],
	countries *ResourceService[domain.Country],
) *CascadeUseCase {
	return &CascadeUseCase{
		courses:       courses,
		categories:    categories,
		subcategories: subcategories,
		specialties:   specialties,
		countries:     countries,
	}
}

func (uc *CascadeUseCase) Courses(ctx context.Context, session domain.Session) (Options, error) {
	items, err := collectAll(ctx, uc.courses, session, nil)
	if err != nil {
		return Options{}, err
	}
	return toOptions(items, func(c domain.Course) string { return label(c.TitleEn, c.TitleAr) }), nil
}

func (uc *CascadeUseCase) Categories(ctx context.Context, session domain.Session, courseID string) (Options, error) {
	if strings.TrimSpace(courseID) == "" {
		return disabledOptions(), nil
	}
	items, err := collectAll(ctx, uc.categories, session, map[string]string{"course_id": courseID})
	if err != nil {
		return Options{}, err
	}
	return toOptions(items, func(c domain.Category) string { return label(c.NameEn, c.NameAr) }), nil
}

func (uc *CascadeUseCase) SubCategories(ctx context.Context, session domain.Session, categoryID string) (Options, error) {
	if strings.TrimSpace(categoryID) == "" {
		return disabledOptions(), nil
	}
	items, err := collectAll(ctx, uc.subcategories, session, map[string]string{"category_id": categoryID})
	if err != nil {
		return Options{}, err
	}
	return toOptions(items, func(s domain.SubCategory) string { return label(s.NameEn, s.NameAr) }), nil
}

func (uc *CascadeUseCase) Specialties(ctx context.Context, session domain.Session) (Options, error) {
	items, err := collectAll(ctx, uc.specialties, session, nil)
	if err != nil {
		return Options{}, err
	}
	return toOptions(items, func(s domain.Specialty) string { return label(s.NameEn, s.NameAr) }), nil
}

func (uc *CascadeUseCase) Countries(ctx context.Context, session domain.Session) (Options, error) {
	items, err := collectAll(ctx, uc.countries, session, nil)
	if err != nil {
		return Options{}, err
	}
	return toOptions(items, func(c domain.Country) string { return label(c.NameEn, c.NameAr) }), nil
}

func toOptions[T domain.Entity](items []T, labelOf func(T) string) Options {
	out := Options{Enabled: true, Items: make([]Option, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, Option{Value: item.EntityID(), Label: labelOf(item)})
	}
	return out
}
