// Package validation wraps go-playground/validator with the field names and
// messages API clients see.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"zoomboom/internal/model"
)

var bdPhone = regexp.MustCompile(`^01[3-9]\d{8}$`)

var messages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email address",
	"url":        "must be a valid URL",
	"min":        "must be at least %s characters",
	"gte":        "must be greater than or equal to %s",
	"gt":         "must be greater than %s",
	"lte":        "must be less than or equal to %s",
	"oneof":      "must be one of: %s",
	"bdphone":    "must be a valid 11-digit BD phone number",
	"parceltype": "must be document or not-document",
}

// FieldError is a single failed rule, keyed by JSON field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error collects every failed rule of a payload.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Validator checks tagged structs.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the custom rules registered.
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("bdphone", func(fl validator.FieldLevel) bool {
		return bdPhone.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register bdphone validation: %w", err)
	}
	if err := v.RegisterValidation("parceltype", func(fl validator.FieldLevel) bool {
		return model.ParcelType(fl.Field().String()).Valid()
	}); err != nil {
		return nil, fmt.Errorf("register parceltype validation: %w", err)
	}

	return &Validator{v: v}, nil
}

// Struct validates s and returns *Error on rule failures.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		if strings.Contains(msg, "%s") {
			msg = fmt.Sprintf(msg, fe.Param())
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// Fail reports a rule checked outside struct tags, such as one that needs a lookup.
func Fail(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}
