package handlers

import (
	"errors"
	"reflect"
	"strings"

	"courseadmin/internal/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	oneCorrectTag = "one_correct"
	afterStartTag = "after_start"
)

// Validator checks form bodies and reports errors keyed by JSON field name.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterStructValidation(questionStructValidation, domain.QuestionInput{})
	validate.RegisterStructValidation(offerStructValidation, domain.OfferInput{})
	validate.RegisterStructValidation(eventStructValidation, domain.EventInput{})

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{oneCorrectTag, afterStartTag} {
		_ = validate.RegisterTranslation(tag, translator, registerFn, translateCustom)
	}

	return &Validator{validate: validate, translator: translator}
}

// Struct returns nil when s is valid.
func (v *Validator) Struct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fe.Translate(v.translator)
	}
	return fields
}

// fieldPath drops the root struct name: "QuestionInput.answers[0].answer_en" -> "answers[0].answer_en".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case oneCorrectTag:
		return "exactly one answer must be marked correct"
	case afterStartTag:
		return "must be after the start date"
	default:
		return ""
	}
}

func questionStructValidation(sl validator.StructLevel) {
	q, ok := sl.Current().Interface().(domain.QuestionInput)
	if !ok || len(q.Answers) < 2 {
		return
	}
	if q.CorrectAnswers() != 1 {
		sl.ReportError(q.Answers, "answers", "Answers", oneCorrectTag, "")
	}
}

func offerStructValidation(sl validator.StructLevel) {
	o, ok := sl.Current().Interface().(domain.OfferInput)
	if !ok || o.StartsAt == nil || o.EndsAt == nil {
		return
	}
	if !o.EndsAt.After(*o.StartsAt) {
		sl.ReportError(o.EndsAt, "ends_at", "EndsAt", afterStartTag, "")
	}
}

func eventStructValidation(sl validator.StructLevel) {
	e, ok := sl.Current().Interface().(domain.EventInput)
	if !ok || e.StartsAt.IsZero() || e.EndsAt.IsZero() {
		return
	}
	if e.EndsAt.Before(e.StartsAt) {
		sl.ReportError(e.EndsAt, "ends_at", "EndsAt", afterStartTag, "")
	}
}
