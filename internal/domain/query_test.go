package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListParams_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListParams
		want ListParams
	}{
		{name: "defaults", in: ListParams{}, want: ListParams{Page: 1, Limit: DefaultLimit}},
		{name: "limit capped", in: ListParams{Page: 3, Limit: 1000}, want: ListParams{Page: 3, Limit: MaxLimit}},
		{name: "bad order dropped", in: ListParams{Page: 1, Limit: 5, Order: "sideways"}, want: ListParams{Page: 1, Limit: 5}},
		{name: "desc kept", in: ListParams{Page: 1, Limit: 5, Order: "desc"}, want: ListParams{Page: 1, Limit: 5, Order: "desc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestListParams_Values(t *testing.T) {
	p := ListParams{
		Page:    2,
		Limit:   20,
		Sort:    "created_at",
		Order:   "asc",
		Search:  "anatomy",
		Filters: map[string]string{"course_id": "c1", "category_id": ""},
	}
	assert.Equal(t, "course_id=c1&limit=20&order=asc&page=2&search=anatomy&sort=created_at", p.Values().Encode())
}

func TestNewPage(t *testing.T) {
	page := NewPage[Course](nil, 21, 1, 10)
	assert.Equal(t, 3, page.Pages)
	assert.NotNil(t, page.Items)

	assert.Equal(t, 0, NewPage([]Course{}, 0, 1, 10).Pages)
	assert.Equal(t, 1, NewPage([]Course{{ID: "1"}}, 10, 1, 10).Pages)
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Minute)))
}

func TestAdmin_CanUseDashboard(t *testing.T) {
	assert.True(t, Admin{Role: "admin"}.CanUseDashboard())
	assert.True(t, Admin{Role: "super_admin"}.CanUseDashboard())
	assert.False(t, Admin{Role: "student"}.CanUseDashboard())
	assert.False(t, Admin{}.CanUseDashboard())
}

func TestQuestionInput_CorrectAnswers(t *testing.T) {
	q := QuestionInput{Answers: []AnswerInput{{IsCorrect: true}, {}, {IsCorrect: true}}}
	assert.Equal(t, 2, q.CorrectAnswers())
}
