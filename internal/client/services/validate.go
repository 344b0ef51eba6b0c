package services

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/ethiocareer/careercli/internal/common"
	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field (by its JSON name) to a message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, "; ")
}

func (f FieldErrors) Unwrap() error { return common.ErrorValidation }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// checkStruct validates the `validate` tags of v.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe.Tag(), fe.Param())
	}
	return out
}

// checkVar validates a single value under field name.
func checkVar(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return FieldErrors{field: fieldMessage(verrs[0].Tag(), verrs[0].Param())}
	}
	return fmt.Errorf("%w: %v", common.ErrorValidation, err)
}

func fieldMessage(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", param)
	case "max":
		return fmt.Sprintf("must be at most %s characters", param)
	case "len":
		return fmt.Sprintf("must be exactly %s characters", param)
	case "numeric":
		return "must contain digits only"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	case "url", "http_url":
		return "must be a valid URL"
	case "e164":
		return "must be a phone number in international format"
	case "eqfield":
		return "does not match"
	default:
		return "is invalid"
	}
}
