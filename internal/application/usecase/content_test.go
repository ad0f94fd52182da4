package usecase

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"courseadmin/internal/domain"
	"courseadmin/internal/infrastructure/cache"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_UnknownPage(t *testing.T) {
	f, api := newFakeAPI(t)
	uc := NewContentUseCase(api.Pages, newQueryCache(t), nil, zerolog.Nop())
	ctx := context.Background()

	_, err := uc.Get(ctx, testSession, "faq")
	assert.ErrorIs(t, err, domain.ErrUnknownPage)

	_, err = uc.Update(ctx, testSession, "faq", domain.PageContentInput{ContentEn: "x", ContentAr: "y"})
	assert.ErrorIs(t, err, domain.ErrUnknownPage)
	assert.Zero(t, f.count(http.MethodGet, "/pages/faq"))
}

func TestContent_GetCachedUntilUpdate(t *testing.T) {
	f, api := newFakeAPI(t)
	f.handle(http.MethodGet, "/pages/terms", http.StatusOK, `{"data":{"content_en":"<p>Terms</p>","content_ar":"<p>شروط</p>"}}`)
	f.handle(http.MethodPut, "/pages/terms", http.StatusOK, `{"data":{"slug":"terms","content_en":"new"},"message":"Saved"}`)

	store := &memoryAudit{}
	uc := NewContentUseCase(api.Pages, newQueryCache(t), NewAuditUseCase(store, zerolog.Nop()), zerolog.Nop())
	ctx := context.Background()

	page, err := uc.Get(ctx, testSession, domain.PageTerms)
	require.NoError(t, err)
	assert.Equal(t, "terms", page.Slug)
	assert.Equal(t, "<p>Terms</p>", page.ContentEn)

	_, err = uc.Get(ctx, testSession, domain.PageTerms)
	require.NoError(t, err)
	assert.Equal(t, 1, f.count(http.MethodGet, "/pages/terms"))

	res, err := uc.Update(ctx, testSession, domain.PageTerms, domain.PageContentInput{ContentEn: "new", ContentAr: "جديد"})
	require.NoError(t, err)
	assert.Equal(t, "Saved", res.Message)

	_, err = uc.Get(ctx, testSession, domain.PageTerms)
	require.NoError(t, err)
	assert.Equal(t, 2, f.count(http.MethodGet, "/pages/terms"))

	require.Len(t, store.entries, 1)
	assert.Equal(t, "pages", store.entries[0].Resource)
	assert.Equal(t, "terms", store.entries[0].ResourceID)
}

func TestContent_CacheReadFailureIsLogged(t *testing.T) {
	f, api := newFakeAPI(t)
	f.handle(http.MethodGet, "/pages/terms", http.StatusOK, `{"data":{"content_en":"<p>Terms</p>"}}`)

	mr, rdb := newRedis(t)
	// GET on a hash fails with WRONGTYPE
	mr.HSet("query:pages:0:slug=terms", "f", "v")

	var logs bytes.Buffer
	uc := NewContentUseCase(api.Pages, cache.NewQueryCache(rdb, time.Minute), nil, zerolog.New(&logs))

	page, err := uc.Get(context.Background(), testSession, domain.PageTerms)
	require.NoError(t, err)
	assert.Equal(t, "<p>Terms</p>", page.ContentEn)
	assert.Equal(t, 1, f.count(http.MethodGet, "/pages/terms"))
	assert.Contains(t, logs.String(), "Query cache read failed")
	assert.Contains(t, logs.String(), "query:pages:0:slug=terms")
}

func TestContent_CacheDownFallsThrough(t *testing.T) {
	f, api := newFakeAPI(t)
	f.handle(http.MethodGet, "/pages/about-us", http.StatusOK, `{"data":{"content_en":"About"}}`)

	mr, rdb := newRedis(t)
	mr.Close()

	var logs bytes.Buffer
	uc := NewContentUseCase(api.Pages, cache.NewQueryCache(rdb, time.Minute), nil, zerolog.New(&logs))

	page, err := uc.Get(context.Background(), testSession, domain.PageAboutUs)
	require.NoError(t, err)
	assert.Equal(t, "About", page.ContentEn)
	assert.Contains(t, logs.String(), "Query cache unavailable")
}
