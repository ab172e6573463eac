// Package validator adapts go-playground/validator to echo and to the field-level validation error.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	domainerrors "sellerhub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	personNamePattern    = regexp.MustCompile(`^\p{L}[\p{L} .'\-]*$`)
	contactNumberPattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds the validator with the custom tags personname and contactnumber.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(wireName)

	mustRegister(validate, "personname", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})
	mustRegister(validate, "contactnumber", func(fl validator.FieldLevel) bool {
		return contactNumberPattern.MatchString(fl.Field().String())
	})

	return &RequestValidator{validate: validate}
}

func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// wireName reports fields by their json name, falling back to the form name.
func wireName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}

// Validate checks i and returns a validation error holding the first message per field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fieldPath(fe)
		if _, seen := fields[name]; !seen {
			fields[name] = message(fe)
		}
	}

	return domainerrors.NewValidationError("", fields)
}

// fieldPath drops the root struct name from the namespace, e.g. "business-address.city".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}

	return path
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_unless", "required_with", "required_without":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "len":
		return fmt.Sprintf("Ensure this field has exactly %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Select a valid choice. Allowed values are %s.", fe.Param())
	case "personname":
		return "Enter a valid name."
	case "contactnumber":
		return "Enter a valid contact number."
	case "numeric":
		return "Enter a number."
	default:
		return "Invalid value."
	}
}
