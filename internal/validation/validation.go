package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
)

// phonePattern accepts an optional leading '+', a first digit 1-9 and
// up to 15 digits in total.
var phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{0,14}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the JSON field name, not the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("intlphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("eventtype", func(fl validator.FieldLevel) bool {
		return models.IsValidEventType(fl.Field().String())
	})
	v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	// Event dates are compared at day granularity. An event date must
	// fall strictly after today; a testimonial's attendance date must
	// not.
	v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		t, err := ParseDate(fl.Field().String())
		if err != nil {
			return false
		}
		return startOfDay(t).After(startOfDay(time.Now()))
	})
	v.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		t, err := ParseDate(fl.Field().String())
		if err != nil {
			return false
		}
		return !startOfDay(t).After(startOfDay(time.Now()))
	})

	return v
}

// ParseDate parses a submitted date in either plain date or RFC 3339
// form.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// Validate checks a request body against its declared rules and
// returns a *models.ValidationError carrying every violated field, or
// nil when the body is acceptable.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation failure (bad struct passed in).
		return err
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return &models.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "intlphone":
		return fmt.Sprintf("%s must be a valid phone number", fe.Field())
	case "eventtype":
		return fmt.Sprintf("%s must be one of the supported event types", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "dateonly":
		return fmt.Sprintf("%s must be a valid date", fe.Field())
	case "futuredate":
		return fmt.Sprintf("%s must be a valid date in the future", fe.Field())
	case "pastdate":
		return fmt.Sprintf("%s must be a valid date not in the future", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
