package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// ValidationError carries per-field messages keyed by the field's json name.
type ValidationError struct {
	Errors map[string]string
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Errors))
	for field, msg := range v.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		registerCustomRules(validate)
	})
	return validate
}

// ValidateStruct runs the registered rules against s and returns a
// *ValidationError with field messages, or nil when the struct is valid.
func ValidateStruct(s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = getErrorMessage(fe)
	}
	return &ValidationError{Errors: fieldErrors}
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "uuid":
		return "Must be a valid UUID"
	case "is-user-role":
		return "Must be CLIENT, PROFESSIONAL or ADMIN"
	case "is-offer-status":
		return "Must be PENDING, ACCEPTED or REJECTED"
	case "is-transaction-status":
		return "Must be PENDING, IN_PROGRESS, COMPLETED or CANCELLED"
	case "is-ticket-status":
		return "Invalid ticket status"
	case "is-discount-type":
		return "Must be PERCENTAGE or FIXED"
	case "is-phone-ve":
		return "Must be a Venezuelan phone number (04XXXXXXXXX)"
	case "is-cedula":
		return "Must be a 7 or 8 digit cedula"
	default:
		return fmt.Sprintf("Failed validation on rule '%s'", fe.Tag())
	}
}
