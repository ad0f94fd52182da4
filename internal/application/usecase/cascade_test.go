package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFilters(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]string
		want map[string]string
	}{
		{
			name: "full chain kept",
			in:   map[string]string{"course_id": "c", "category_id": "k", "subcategory_id": "s"},
			want: map[string]string{"course_id": "c", "category_id": "k", "subcategory_id": "s"},
		},
		{
			name: "category without course",
			in:   map[string]string{"category_id": "k", "subcategory_id": "s"},
			want: map[string]string{},
		},
		{
			name: "subcategory without category",
			in:   map[string]string{"course_id": "c", "subcategory_id": "s"},
			want: map[string]string{"course_id": "c"},
		},
		{
			name: "blank values trimmed away",
			in:   map[string]string{"course_id": "  ", "category_id": "k", "active": " true "},
			want: map[string]string{"active": "true"},
		},
		{
			name: "nil",
			in:   nil,
			want: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeFilters(tt.in))
		})
	}
}

func newCascade(t *testing.T) (*fakeAPI, *CascadeUseCase) {
	f, api := newFakeAPI(t)
	catalog := NewCatalog(api, newQueryCache(t), nil, zerolog.Nop())
	return f, NewCascadeUseCase(catalog.Courses, catalog.Categories, catalog.SubCategories, catalog.Specialties, catalog.Countries)
}

func TestCascade_DisabledWithoutParent(t *testing.T) {
	f, uc := newCascade(t)
	ctx := context.Background()

	opts, err := uc.Categories(ctx, testSession, "")
	require.NoError(t, err)
	assert.False(t, opts.Enabled)
	assert.Empty(t, opts.Items)

	opts, err = uc.SubCategories(ctx, testSession, " ")
	require.NoError(t, err)
	assert.False(t, opts.Enabled)

	assert.Zero(t, f.count(http.MethodGet, "/categories"))
	assert.Zero(t, f.count(http.MethodGet, "/subcategories"))
}

func TestCascade_CategoriesOfCourse(t *testing.T) {
	f, uc := newCascade(t)
	f.handle(http.MethodGet, "/categories", http.StatusOK,
		`{"categories":[{"id":"k1","name_en":"Basics"},{"id":"k2","name_ar":"متقدم"}],"total":2}`)

	opts, err := uc.Categories(context.Background(), testSession, "c1")
	require.NoError(t, err)
	assert.True(t, opts.Enabled)
	require.Len(t, opts.Items, 2)
	assert.Equal(t, Option{Value: "k1", Label: "Basics"}, opts.Items[0])
	assert.Equal(t, "متقدم", opts.Items[1].Label)
	assert.Equal(t, "c1", f.query(http.MethodGet, "/categories").Get("course_id"))
}

func TestCascade_WalksAllPages(t *testing.T) {
	f, uc := newCascade(t)
	f.handleFunc(http.MethodGet, "/countries", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		n := 100
		if page == 2 {
			n = 30
		}
		body := `{"countries":[`
		for i := 0; i < n; i++ {
			if i > 0 {
				body += ","
			}
			body += fmt.Sprintf(`{"id":"p%d-%d","name_en":"Country"}`, page, i)
		}
		body += `],"total":130}`
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	opts, err := uc.Countries(context.Background(), testSession)
	require.NoError(t, err)
	assert.Len(t, opts.Items, 130)
	assert.Equal(t, 2, f.count(http.MethodGet, "/countries"))
}

func TestCascade_UpstreamError(t *testing.T) {
	f, uc := newCascade(t)
	f.handle(http.MethodGet, "/specialties", http.StatusServiceUnavailable, `{"message":"maintenance"}`)

	_, err := uc.Specialties(context.Background(), testSession)
	require.Error(t, err)
	assert.Equal(t, "maintenance", err.Error())
}
