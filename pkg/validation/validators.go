package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shareable usernames: letters, numbers, hyphens, underscores. Length is
// enforced separately with the min tag so the two violations report distinctly.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// New builds the validator instance used across the application: custom rules
// registered, and field names resolved from json tags so violation paths match
// the wire format (e.g. "contactInfo.email" instead of "ContactInfo.Email").
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("username", ValidUsername)
}

// ValidUsername validates the username charset
func ValidUsername(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // length rules handle emptiness
	}
	return usernameRegex.MatchString(val)
}
