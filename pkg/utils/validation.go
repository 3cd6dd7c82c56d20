package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds the shared validator. Field names in error messages
// come from the json tag, so clients see the names they sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct validates the request body struct against its validate
// tags and collapses all failures into a single error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fieldMessage(e))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// fieldMessage renders one failed constraint. The cases cover the tags the
// request bodies use: required, min, max and email.
func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty", e.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("%s is not a valid email address", e.Field())
	default:
		return fmt.Sprintf("%s failed the %s constraint", e.Field(), e.Tag())
	}
}
