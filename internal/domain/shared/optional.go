package shared

import (
	"bytes"
	"encoding/json"
)

// Optional carries a value for a partial update together with whether the
// caller supplied it. A field that is absent from the payload stays unset and
// is never merged; an explicit JSON null is "set" with the zero value.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional that is set to v
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON marks the field as present and decodes its value
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON writes the value, or null when unset
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Apply writes the value into dst when set and reports whether it did
func (o Optional[T]) Apply(dst *T) bool {
	if !o.Set {
		return false
	}
	*dst = o.Value
	return true
}

// Or returns the supplied value, or fallback when unset
func (o Optional[T]) Or(fallback T) T {
	if o.Set {
		return o.Value
	}
	return fallback
}
