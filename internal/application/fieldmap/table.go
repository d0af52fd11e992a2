// Package fieldmap translates between the external field names used by API
// clients (camelCase, with a few historical aliases) and the canonical
// snake_case names used by inputs, rules and the store.
//
// Every entity kind has one static Table. Inbound payloads are renamed with
// ToInternal and then decoded into typed inputs; outbound records are renamed
// with ToExternal, which always emits the full key set of the table.
package fieldmap

import (
	"encoding/json"
	"strings"
)

// Payload is an inbound JSON object with its values left undecoded
type Payload map[string]json.RawMessage

// Record is an outbound object keyed by field name
type Record map[string]any

// Alias pairs an external field name with its canonical name
type Alias struct {
	External  string
	Canonical string
}

// Normalizer rewrites a string value after it is mapped to its canonical key
type Normalizer func(string) string

// Table is the alias table of one entity kind
type Table struct {
	kind        string
	toCanonical map[string]string
	toExternal  map[string]string
	order       []string
	normalizers map[string]Normalizer
}

// NewTable builds a table from alias pairs. The order of pairs is the order of
// keys produced by ToExternal.
func NewTable(kind string, pairs ...Alias) *Table {
	t := &Table{
		kind:        kind,
		toCanonical: make(map[string]string, len(pairs)),
		toExternal:  make(map[string]string, len(pairs)),
		order:       make([]string, 0, len(pairs)),
		normalizers: map[string]Normalizer{},
	}
	for _, p := range pairs {
		if _, dup := t.toExternal[p.Canonical]; dup {
			panic("fieldmap: duplicate canonical field " + p.Canonical + " in " + kind)
		}
		t.toCanonical[p.External] = p.Canonical
		t.toExternal[p.Canonical] = p.External
		t.order = append(t.order, p.Canonical)
	}
	return t
}

// WithNormalizer registers fn for string values of the canonical field
func (t *Table) WithNormalizer(canonical string, fn Normalizer) *Table {
	t.normalizers[canonical] = fn
	return t
}

// Kind returns the entity kind the table belongs to
func (t *Table) Kind() string {
	return t.kind
}

// ExternalName returns the external name of a canonical field, or the name
// unchanged when the table does not know it.
func (t *Table) ExternalName(canonical string) string {
	if ext, ok := t.toExternal[canonical]; ok {
		return ext
	}
	return canonical
}

// CanonicalName returns the canonical name for an external or canonical key
func (t *Table) CanonicalName(key string) string {
	if canonical, ok := t.toCanonical[key]; ok {
		return canonical
	}
	return key
}

// ToInternal renames known external keys to canonical ones. Canonical keys are
// accepted as they are and win over an alias for the same field. Unknown keys
// pass through unchanged.
func (t *Table) ToInternal(payload Payload) Payload {
	out := make(Payload, len(payload))
	for key, value := range payload {
		if _, isCanonical := t.toExternal[key]; isCanonical {
			out[key] = value
		}
	}
	for key, value := range payload {
		if _, isCanonical := t.toExternal[key]; isCanonical {
			continue
		}
		canonical := t.CanonicalName(key)
		if _, taken := out[canonical]; taken {
			continue
		}
		out[canonical] = value
	}
	for canonical, fn := range t.normalizers {
		if raw, ok := out[canonical]; ok {
			out[canonical] = normalizeString(raw, fn)
		}
	}
	return out
}

// ToExternal renames canonical keys to external ones. Every field known to the
// table is present in the result, with nil when fields has no value for it.
// Keys unknown to the table are copied as they are.
func (t *Table) ToExternal(fields Record) Record {
	out := make(Record, len(t.order)+len(fields))
	for _, canonical := range t.order {
		out[t.toExternal[canonical]] = fields[canonical]
	}
	for key, value := range fields {
		if _, known := t.toExternal[key]; !known {
			out[key] = value
		}
	}
	return out
}

// Keys returns the external keys in table order
func (t *Table) Keys() []string {
	keys := make([]string, len(t.order))
	for i, canonical := range t.order {
		keys[i] = t.toExternal[canonical]
	}
	return keys
}

func normalizeString(raw json.RawMessage, fn Normalizer) json.RawMessage {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		// null and non-string values are left for the decoder to judge
		return raw
	}
	out, err := json.Marshal(fn(*s))
	if err != nil {
		return raw
	}
	return out
}

// trimThen trims surrounding whitespace before applying fn
func trimThen(fn Normalizer) Normalizer {
	return func(s string) string {
		return fn(strings.TrimSpace(s))
	}
}
