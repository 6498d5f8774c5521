package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator is shared by every handler.
var Validator *validator.Validate

// Trans translates validation errors into user-facing messages.
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":            "Name",
	"course_id":       "Course",
	"tee_id":          "Tee",
	"hole_id":         "Hole",
	"date_played":     "Date played",
	"number_of_holes": "Number of holes",
	"stroke_index":    "Stroke index",
	"par":             "Par",
	"rating":          "Course rating",
	"slope":           "Slope",
	"yardage":         "Yardage",
	"field":           "Field",
	"value":           "Value",
}

func displayName(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// report json names instead of Go field names
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, displayName(fe), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0} is required")
	registerTranslation("oneof", "{0} must be one of [{1}]")
	registerTranslation("min", "{0} must be at least {1}")
	registerTranslation("max", "{0} must be at most {1}")
	registerTranslation("gt", "{0} must be greater than {1}")
	registerTranslation("lt", "{0} must be less than {1}")
}
