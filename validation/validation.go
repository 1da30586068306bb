package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/problem"
	"github.com/kbukum/problem/status"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their json names, as clients see them.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return toSnakeCase(fld.Name)
			}
			return name
		})
	})
	return validate
}

// Struct validates s using `validate:"..."` struct tags. It returns nil when
// s is valid, otherwise a problem.Problem (usable as an error and renderable
// directly by the server package).
func Struct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator only returns InvalidValidationError here, e.g. when s
		// is not a struct. That is a caller bug, not a client problem.
		return problem.FromStatus(status.UnprocessableEntity).
			SetDetail(err.Error())
	}
	return FromErrors(errs)
}

// FromErrors converts validator failures into a 422 problem, for callers
// that run their own validator instance.
func FromErrors(errs validator.ValidationErrors) problem.Problem {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Field()+" "+message(e))
	}
	return problem.FromStatus(status.UnprocessableEntity).
		SetDetail(strings.Join(messages, "; "))
}

// message renders a human-readable description for a single failed rule.
func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// toSnakeCase converts a Go field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(r + 32)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
