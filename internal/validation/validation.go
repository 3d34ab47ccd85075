// Package validation holds the declarative form schemas for task and user
// input. Each schema turns an untyped set of submitted form fields into a
// typed record, or a field-to-message error map with every failing field
// reported, not just the first.
package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to a human-readable message.
type Errors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the submitted form field name rather than the
	// Go struct field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("calendardate", validCalendarDate); err != nil {
		panic(err)
	}

	return v
}

func validCalendarDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseDate parses a submitted due-date string. HTML date inputs submit
// ISO dates, but datetime-local and full RFC3339 values are accepted too.
func ParseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// collect runs the schema and maps each failing field to its fixed message.
func collect(form any, messages map[string]string) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"general": "Invalid input"}
	}

	errs := Errors{}
	for _, fe := range verrs {
		field := fe.Field()
		if msg, ok := messages[field]; ok {
			errs[field] = msg
		} else {
			errs[field] = "Invalid value"
		}
	}
	return errs
}
