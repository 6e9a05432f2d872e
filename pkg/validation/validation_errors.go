package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts a validator error into a field -> message map the
// API can return as a 400 body. Non-validator errors map to a single
// "detail" entry.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["detail"] = err.Error()
		return fields
	}

	for _, e := range validationErrors {
		fields[snakeCase(e.Field())] = message(e)
	}
	return fields
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Ensure this field has at least %s characters.", e.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", e.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", e.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", e.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", e.Param())
	case "url":
		return "Enter a valid URL."
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", e.Tag())
	}
}

// snakeCase converts a struct field name like FullName to full_name so the
// message map lines up with the JSON payload.
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
