// Package validation configures go-playground/validator to report JSON
// field names and renders its errors as one message per field.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator whose errors name fields by their json tag.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldMessages keeps the first failure for each field.
func FieldMessages(validationErr validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(validationErr))
	for _, err := range validationErr {
		field := err.Field()
		if _, seen := fields[field]; seen {
			continue
		}
		fields[field] = fieldMessage(strings.ToLower(field), err.Tag(), err.Param())
	}
	return fields
}

func fieldMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "min", "gte":
		return field + " must be at least " + param
	case "max", "lte":
		return field + " must be at most " + param
	case "gt":
		return field + " must be greater than " + param
	case "oneof":
		return field + " must be one of: " + param
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}
