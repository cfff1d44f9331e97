package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Fields converts validator.ValidationErrors into a field-path -> message map.
// Paths use json names, with the root struct segment stripped:
// "UserProfile.contactInfo.email" becomes "contactInfo.email".
// All violations are collected; submission fails as a whole.
func Fields(err error) map[string]string {
	fields := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_"] = err.Error()
		return fields
	}

	for _, e := range validationErrors {
		fields[fieldPath(e.Namespace())] = message(e)
	}

	return fields
}

func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must contain at least %s item(s)", e.Param())

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must contain at most %s item(s)", e.Param())

	case "email":
		return "must be a valid email address"

	case "url":
		return "must be a valid URL"

	case "username":
		return "can only contain letters, numbers, hyphens, and underscores"

	case "unique":
		return "must not contain duplicate entries"

	default:
		return fmt.Sprintf("failed validation (%s)", e.Tag())
	}
}
