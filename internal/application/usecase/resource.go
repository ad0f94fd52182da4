package usecase

import (
	"context"
	"net/url"

	"courseadmin/internal/client"
	"courseadmin/internal/domain"
	"courseadmin/internal/infrastructure/cache"

	"github.com/rs/zerolog"
)

// ResourceService puts the query cache and the activity log around one
// upstream resource module.
type ResourceService[T domain.Entity] struct {
	resource   *client.Resource[T]
	cache      *cache.QueryCache
	audit      *AuditUseCase
	logger     zerolog.Logger
	dependents []string
	cascading  bool
}

type ResourceOption func(*resourceOptions)

type resourceOptions struct {
	dependents []string
	cascading  bool
}

// WithDependents lists resources whose cached reads embed this one and
// must be dropped with it.
func WithDependents(names ...string) ResourceOption {
	return func(o *resourceOptions) { o.dependents = append(o.dependents, names...) }
}

// WithCascadingFilters applies the course -> category -> subcategory rule
// to list filters.
func WithCascadingFilters() ResourceOption {
	return func(o *resourceOptions) { o.cascading = true }
}

func NewResourceService[T domain.Entity](
	resource *client.Resource[T],
	queryCache *cache.QueryCache,
	audit *AuditUseCase,
	logger zerolog.Logger,
	opts ...ResourceOption,
) *ResourceService[T] {
	var o resourceOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &ResourceService[T]{
		resource:   resource,
		cache:      queryCache,
		audit:      audit,
		logger:     logger.With().Str("resource", resource.Name()).Logger(),
		dependents: o.dependents,
		cascading:  o.cascading,
	}
}

func (s *ResourceService[T]) Name() string {
	return s.resource.Name()
}

func (s *ResourceService[T]) List(ctx context.Context, session domain.Session, params domain.ListParams) (domain.Page[T], error) {
	params = params.Normalize()
	if s.cascading {
		params.Filters = NormalizeFilters(params.Filters)
	}
	return cachedRead(ctx, s.cache, s.logger, s.Name(), params.Values(), func() (domain.Page[T], error) {
		return s.resource.List(ctx, session.Token, params)
	})
}

func (s *ResourceService[T]) Get(ctx context.Context, session domain.Session, id string) (T, error) {
	return cachedRead(ctx, s.cache, s.logger, s.Name(), url.Values{"id": {id}}, func() (T, error) {
		return s.resource.Get(ctx, session.Token, id)
	})
}

func (s *ResourceService[T]) Create(ctx context.Context, session domain.Session, in any) (client.Result[T], error) {
	res, err := s.resource.Create(ctx, session.Token, in)
	if err != nil {
		return res, err
	}
	s.afterMutation(ctx, session, domain.ActionCreate, res.Data.EntityID())
	return res, nil
}

func (s *ResourceService[T]) Update(ctx context.Context, session domain.Session, id string, in any) (client.Result[T], error) {
	res, err := s.resource.Update(ctx, session.Token, id, in)
	if err != nil {
		return res, err
	}
	s.afterMutation(ctx, session, domain.ActionUpdate, id)
	return res, nil
}

func (s *ResourceService[T]) Delete(ctx context.Context, session domain.Session, id string) (string, error) {
	msg, err := s.resource.Delete(ctx, session.Token, id)
	if err != nil {
		return "", err
	}
	s.afterMutation(ctx, session, domain.ActionDelete, id)
	return msg, nil
}

func (s *ResourceService[T]) SetStatus(ctx context.Context, session domain.Session, id string, body any) (client.Result[T], error) {
	res, err := s.resource.SetStatus(ctx, session.Token, id, body)
	if err != nil {
		return res, err
	}
	s.afterMutation(ctx, session, domain.ActionStatus, id)
	return res, nil
}

func (s *ResourceService[T]) afterMutation(ctx context.Context, session domain.Session, action, id string) {
	invalidate(ctx, s.cache, s.logger, append([]string{s.Name()}, s.dependents...)...)
	s.audit.Record(ctx, session, action, s.Name(), id)
}

const maxCollectPages = 50

// collectAll walks every page of a list. Used for dropdowns and the calendar
// where the screen needs the whole set.
func collectAll[T domain.Entity](ctx context.Context, s *ResourceService[T], session domain.Session, filters map[string]string) ([]T, error) {
	params := domain.ListParams{Page: 1, Limit: domain.MaxLimit, Filters: filters}
	var out []T
	for i := 0; i < maxCollectPages; i++ {
		page, err := s.List(ctx, session, params)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
		if len(page.Items) == 0 || params.Page >= page.Pages {
			break
		}
		params.Page++
	}
	return out, nil
}
