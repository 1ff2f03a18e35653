package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shoplytics/backend/internal/interfaces/http/dto"
)

// RequestField is the errors key used when a failure cannot be tied to a field
const RequestField = "request"

var integerRegex = regexp.MustCompile(`^[-+]?[0-9]+$`)

// SetupValidator configures gin's validator: field names come from the json
// or form tag, and the integer and date tags are registered.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("uri"), ",", 2)[0]
		}
		return name
	})
	_ = v.RegisterValidation("integer", validateInteger)
	_ = v.RegisterValidation("date", validateDate)
}

// validateInteger accepts an optionally signed run of digits
func validateInteger(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return fl.Field().CanInt()
	}
	return integerRegex.MatchString(fl.Field().String())
}

// validateDate accepts a calendar date in YYYY-MM-DD format
func validateDate(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// FormatValidationErrors turns a binding error into per-field messages.
// Decoding failures that name no field are reported under RequestField.
func FormatValidationErrors(err error) dto.ValidationErrors {
	errs := dto.ValidationErrors{}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs.Add(e.Field(), getValidationMessage(e))
		}
		return errs
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		errs.Add(typeErr.Field, fmt.Sprintf("The %s field has an invalid type.", typeErr.Field))
		return errs
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		errs.Add(RequestField, "The request body must be valid JSON.")
		return errs
	}

	errs.Add(RequestField, "The request could not be parsed.")
	return errs
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "numeric":
		return fmt.Sprintf("The %s field must be a number.", field)
	case "integer":
		return fmt.Sprintf("The %s field must be an integer.", field)
	case "date":
		return fmt.Sprintf("The %s field must be a valid date in YYYY-MM-DD format.", field)
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", field, e.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", field, e.Param())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must be at least %s characters.", field, e.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", field, e.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s.", field, e.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
