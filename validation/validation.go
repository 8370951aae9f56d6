// Package validation centralizes the per-entity form validation every
// endpoint runs before touching the store or the backend. Invalid input is
// resolved here and never reaches either layer.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

func init() {
	validate = validator.New()

	// Report errors under the json field name the form was posted with.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	_ = validate.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		return dateRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("timeformat", func(fl validator.FieldLevel) bool {
		return timeRegex.MatchString(fl.Field().String())
	})
}

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidPhone accepts international numbers with an optional + prefix,
// ignoring spaces, dashes and parentheses.
func ValidPhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneRegex.MatchString(cleaned)
}

// Check runs the struct rules and returns field-level errors keyed by the
// json field name. An empty map means the form is valid.
func Check(form any) map[string]string {
	errs := make(map[string]string)
	if err := validate.Struct(form); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			errs["_form"] = err.Error()
			return errs
		}
		for _, ve := range validationErrors {
			errs[ve.Field()] = ve.Tag()
		}
	}
	return errs
}
