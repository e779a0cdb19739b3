package views

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sushihentaime/blogistui/internal/common"
)

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their form name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

// validateForm checks form's validate tags and returns the failures keyed
// by field.
func validateForm(form any) (map[string]string, error) {
	v := common.NewValidator()

	err := formValidator.Struct(form)
	if err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return nil, err
		}
		for _, fe := range ve {
			v.AddError(fe.Field(), fieldError(fe))
		}
	}

	if !v.Valid() {
		return v.Errors, v.ValidationError()
	}
	return v.Errors, nil
}

func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be provided"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must not be more than %s characters long", fe.Param())
	case "alphanum":
		return "must only contain letters and numbers"
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
