package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type OrderValidator interface {
	Validate(submission OrderSubmission) error
}

type orderValidator struct {
	validate *validator.Validate
}

func NewOrderValidator() OrderValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("shopemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("honeypot", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) == ""
	})
	return &orderValidator{validate: v}
}

// Validate checks the whole submission and reports all failing fields at once.
func (v *orderValidator) Validate(submission OrderSubmission) error {
	err := v.validate.Struct(submission)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		result.Fields = append(result.Fields, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return result
}

func describe(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("must be at most %s%s", fe.Param(), unit)
	case "shopemail":
		return "must be a valid email address"
	case "honeypot":
		return "spam detected"
	default:
		return "is invalid"
	}
}
