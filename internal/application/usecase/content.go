package usecase

import (
	"context"
	"net/url"

	"courseadmin/internal/client"
	"courseadmin/internal/domain"
	"courseadmin/internal/infrastructure/cache"

	"github.com/rs/zerolog"
)

const pagesResource = "pages"

// ContentUseCase edits the About Us, Terms and Privacy Policy pages.
type ContentUseCase struct {
	pages  *client.PagesAPI
	cache  *cache.QueryCache
	audit  *AuditUseCase
	logger zerolog.Logger
}

func NewContentUseCase(pages *client.PagesAPI, queryCache *cache.QueryCache, audit *AuditUseCase, logger zerolog.Logger) *ContentUseCase {
	return &ContentUseCase{
		pages:  pages,
		cache:  queryCache,
		audit:  audit,
		logger: logger.With().Str("resource", pagesResource).Logger(),
	}
}

func (uc *ContentUseCase) Get(ctx context.Context, session domain.Session, slug string) (domain.PageContent, error) {
	if !domain.IsContentPage(slug) {
		return domain.PageContent{}, domain.ErrUnknownPage
	}

	return cachedRead(ctx, uc.cache, uc.logger, pagesResource, url.Values{"slug": {slug}}, func() (domain.PageContent, error) {
		return uc.pages.Get(ctx, session.Token, slug)
	})
}

func (uc *ContentUseCase) Update(ctx context.Context, session domain.Session, slug string, in domain.PageContentInput) (client.Result[domain.PageContent], error) {
	if !domain.IsContentPage(slug) {
		return client.Result[domain.PageContent]{}, domain.ErrUnknownPage
	}

	res, err := uc.pages.Update(ctx, session.Token, slug, in)
	if err != nil {
		return res, err
	}
	invalidate(ctx, uc.cache, uc.logger, pagesResource)
	uc.audit.Record(ctx, session, domain.ActionUpdate, pagesResource, slug)
	return res, nil
}
