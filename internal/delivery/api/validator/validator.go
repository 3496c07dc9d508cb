// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"
	"unicode"

	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports field names by their JSON tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: v}
}

// Validate checks i and converts failures into a *domainerrors.ValidationError.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	verr := &domainerrors.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe.Namespace()), describe(fe))
	}

	return verr
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "datetime":
		return "must be a date formatted as YYYY-MM-DD"
	default:
		return "is invalid"
	}
}

// fieldPath drops the root struct name from a namespace such as
// "createMealPlanRequest.sessions[0].mealtime".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return lowerFirst(namespace)
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return lowerFirst(fld.Name)
	}

	return name
}

func lowerFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToLower(r)) + s[i+len(string(r)):]
	}

	return s
}
