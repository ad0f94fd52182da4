package domain

import "time"

type Answer struct {
	ID        string `json:"id,omitempty"`
	AnswerEn  string `json:"answer_en"`
	AnswerAr  string `json:"answer_ar"`
	IsCorrect bool   `json:"is_correct"`
}

type Question struct {
	ID            string    `json:"id"`
	QuestionEn    string    `json:"question_en"`
	QuestionAr    string    `json:"question_ar"`
	ExplanationEn string    `json:"explanation_en,omitempty"`
	ExplanationAr string    `json:"explanation_ar,omitempty"`
	LectureID     string    `json:"lecture_id,omitempty"`
	CourseID      string    `json:"course_id"`
	CategoryID    string    `json:"category_id,omitempty"`
	SubCategoryID string    `json:"subcategory_id,omitempty"`
	Active        bool      `json:"active"`
	Answers       []Answer  `json:"answers"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AnswerInput struct {
	AnswerEn  string `json:"answer_en" validate:"required"`
	AnswerAr  string `json:"answer_ar" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionInput also has a struct level rule: exactly one answer is correct.
type QuestionInput struct {
	QuestionEn    string        `json:"question_en" validate:"required"`
	QuestionAr    string        `json:"question_ar" validate:"required"`
	ExplanationEn string        `json:"explanation_en,omitempty"`
	ExplanationAr string        `json:"explanation_ar,omitempty"`
	LectureID     string        `json:"lecture_id,omitempty"`
	CourseID      string        `json:"course_id" validate:"required"`
	CategoryID    string        `json:"category_id" validate:"required"`
	SubCategoryID string        `json:"subcategory_id,omitempty"`
	Answers       []AnswerInput `json:"answers" validate:"min=2,dive"`
	Active        *bool         `json:"active,omitempty"`
}

func (q QuestionInput) CorrectAnswers() int {
	n := 0
	for _, a := range q.Answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}
