// Package validation checks request payloads before they reach a repository.
//
// Rules are declared with `validate` struct tags and evaluated by
// go-playground/validator; the outcome is either nil or a Failures value that
// enumerates every offending field together with a Reason.
package validation

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/demoapps/go-services/internal/apperr"
)

// Reason classifies why a field was rejected.
type Reason string

const (
	Required   Reason = "required"
	NotAllowed Reason = "not_allowed"
	OutOfRange Reason = "out_of_range"
	Malformed  Reason = "malformed"
)

// Failure describes one rejected field.
type Failure struct {
	Field   string   `json:"field"`
	Reason  Reason   `json:"reason"`
	Allowed []string `json:"allowed,omitempty"`
}

// Failures is the error returned when a payload does not validate.
type Failures []Failure

func (f Failures) Error() string {
	parts := make([]string, 0, len(f))
	for _, x := range f {
		parts = append(parts, x.Field+": "+string(x.Reason))
	}
	return "invalid payload (" + strings.Join(parts, "; ") + ")"
}

// Has reports whether field failed for any reason.
func (f Failures) Has(field string) bool {
	return slices.ContainsFunc(f, func(x Failure) bool { return x.Field == field })
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names, they are what clients send
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Struct validates v against its tags.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := make(Failures, 0, len(ve))
	for _, fe := range ve {
		out = append(out, failureFor(fe))
	}
	return out
}

func failureFor(fe validator.FieldError) Failure {
	f := Failure{Field: fe.Field()}
	switch fe.Tag() {
	case "required", "notblank":
		f.Reason = Required
	case "oneof":
		f.Reason = NotAllowed
		f.Allowed = strings.Fields(fe.Param())
	case "gt", "gte", "lt", "lte", "min", "max":
		f.Reason = OutOfRange
	default:
		f.Reason = Malformed
	}
	return f
}

// OneOf checks an enum value without a struct.
func OneOf[T ~string](field string, v T, allowed ...T) error {
	if slices.Contains(allowed, v) {
		return nil
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return Failures{{Field: field, Reason: NotAllowed, Allowed: names}}
}

// AsAppError converts Failures into a 400 apperr carrying message. Other
// errors pass through unchanged.
func AsAppError(err error, message string) error {
	var f Failures
	if !errors.As(err, &f) {
		return err
	}
	if message == "" {
		message = f.Error()
	}
	return apperr.WithFields(apperr.ErrValidation, message, f)
}
