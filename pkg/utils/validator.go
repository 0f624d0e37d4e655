package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and returns the raw
// validator error, or nil.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// FieldError is one failed validation rule, keyed by the JSON-ish field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// GetValidationErrors converts a validator error into response details.
func GetValidationErrors(err error) []FieldError {
	var fieldErrors []FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageForTag(fe),
		})
	}

	return fieldErrors
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "alphanum":
		return "Must contain only letters and numbers"
	case "eqfield":
		return fmt.Sprintf("Must match %s", strings.ToLower(fe.Param()))
	case "uuid":
		return "Must be a valid id"
	default:
		return fmt.Sprintf("Failed validation on '%s'", fe.Tag())
	}
}
