package fieldmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/executiva/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one invalid field of a payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is returned by Decode and Bind when a payload cannot be accepted
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Optional fields are validated on their value, and skipped when unset
	v.RegisterCustomTypeFunc(optionalValue[string], shared.Optional[string]{})
	v.RegisterCustomTypeFunc(optionalValue[*string], shared.Optional[*string]{})
	v.RegisterCustomTypeFunc(optionalValue[int64], shared.Optional[int64]{})
	v.RegisterCustomTypeFunc(optionalValue[*int64], shared.Optional[*int64]{})
	v.RegisterCustomTypeFunc(optionalValue[bool], shared.Optional[bool]{})
	v.RegisterCustomTypeFunc(optionalValue[[]int64], shared.Optional[[]int64]{})
	v.RegisterCustomTypeFunc(optionalValue[*shared.Date], shared.Optional[*shared.Date]{})
	return v
}

func optionalValue[T any](field reflect.Value) any {
	o, ok := field.Interface().(shared.Optional[T])
	if !ok || !o.Set {
		return nil
	}
	return o.Value
}

// Decode decodes a canonical payload into dst and validates it against the
// validate tags of dst. Keys that dst does not declare are ignored.
func Decode(payload Payload, dst any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("fieldmap: encode payload: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	return Validate(dst)
}

// Validate runs the validate tags of v
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

// Bind maps an external payload to canonical names, decodes it into dst and
// reports invalid fields under their external names.
func (t *Table) Bind(payload Payload, dst any) error {
	err := Decode(t.ToInternal(payload), dst)
	var ferrs Errors
	if errors.As(err, &ferrs) {
		for i := range ferrs {
			ferrs[i].Field = t.ExternalName(ferrs[i].Field)
		}
		return ferrs
	}
	return err
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[:i]
		}
		return Errors{{Field: field, Message: "must be of type " + typeErr.Type.String()}}
	}
	return Errors{{Field: "", Message: err.Error()}}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if fe.Kind() == reflect.String {
			return "Must be at least " + fe.Param() + " characters"
		}
		return "Must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "Must be at most " + fe.Param() + " characters"
		}
		return "Must be at most " + fe.Param()
	case "gt":
		return "Must be greater than " + fe.Param()
	case "url":
		return "Invalid URL format"
	default:
		return "Invalid value"
	}
}
