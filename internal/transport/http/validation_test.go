package handlers

import (
	"testing"
	"time"

	"courseadmin/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidator_Question(t *testing.T) {
	v := NewValidator()
	base := func(answers ...domain.AnswerInput) *domain.QuestionInput {
		return &domain.QuestionInput{
			QuestionEn: "2+2?",
			QuestionAr: "٢+٢؟",
			CourseID:   "c1",
			CategoryID: "k1",
			Answers:    answers,
		}
	}
	right := domain.AnswerInput{AnswerEn: "4", AnswerAr: "٤", IsCorrect: true}
	wrong := domain.AnswerInput{AnswerEn: "5", AnswerAr: "٥"}

	tests := []struct {
		name  string
		in    *domain.QuestionInput
		field string
		msg   string
	}{
		{name: "valid", in: base(right, wrong)},
		{name: "no correct answer", in: base(wrong, wrong), field: "answers", msg: "exactly one answer must be marked correct"},
		{name: "two correct answers", in: base(right, right, wrong), field: "answers", msg: "exactly one answer must be marked correct"},
		{name: "too few answers", in: base(right), field: "answers"},
		{name: "empty nested answer", in: base(right, domain.AnswerInput{AnswerAr: "x"}), field: "answers[1].answer_en", msg: "answer_en is a required field"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := v.Struct(tt.in)
			if tt.field == "" {
				assert.Nil(t, fields)
				return
			}
			assert.Contains(t, fields, tt.field)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, fields[tt.field])
			}
		})
	}
}

func TestValidator_Dates(t *testing.T) {
	v := NewValidator()
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)
	after := start.Add(time.Hour)

	offer := &domain.OfferInput{TitleEn: "Sale", TitleAr: "تخفيض", DiscountPercent: 20, StartsAt: &start, EndsAt: &before}
	assert.Equal(t, "must be after the start date", v.Struct(offer)["ends_at"])

	offer.EndsAt = &after
	assert.Nil(t, v.Struct(offer))

	offer.EndsAt = nil
	assert.Nil(t, v.Struct(offer), "open ended offer")

	event := &domain.EventInput{TitleEn: "Live", TitleAr: "مباشر", StartsAt: start, EndsAt: before}
	assert.Contains(t, v.Struct(event), "ends_at")

	event.EndsAt = start
	assert.Nil(t, v.Struct(event), "zero length event")
}

func TestValidator_FieldNames(t *testing.T) {
	fields := NewValidator().Struct(&domain.CourseInput{Price: -1})
	assert.Equal(t, "title_en is a required field", fields["title_en"])
	assert.Contains(t, fields, "title_ar")
	assert.Contains(t, fields, "price")
	assert.NotContains(t, fields, "image")
}
