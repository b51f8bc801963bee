package core

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// custom validation tags & texts
	enDateTag   = "endate"
	enDateText  = "{0} must be a date formatted as DD/MM/YYYY"
	enDateRegex = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

	timeRangeTag   = "timerange"
	timeRangeText  = "{0} must be a time range formatted as HH:MM-HH:MM"
	timeRangeRegex = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)

	requiredTag     = "required"
	requiredWithTag = "required_with"
	requiredText    = "this field is required"
)

// NewTranslator returns the english translator used to render validation errors.
func NewTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(enDateTag, enDateValidation)
	RegisterCustomTranslation(validate, translator, enDateTag, enDateText)

	_ = validate.RegisterValidation(timeRangeTag, timeRangeValidation)
	RegisterCustomTranslation(validate, translator, timeRangeTag, timeRangeText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
	RegisterCustomTranslation(validate, translator, requiredWithTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// enDateValidation only allows dates formatted the en-GB way: DD/MM/YYYY.
func enDateValidation(fl validator.FieldLevel) bool {
	return enDateRegex.MatchString(fl.Field().String())
}

// timeRangeValidation only allows "08:00-09:00" like ranges.
func timeRangeValidation(fl validator.FieldLevel) bool {
	return timeRangeRegex.MatchString(fl.Field().String())
}
