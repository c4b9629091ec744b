// Package schema validates inbound JSON payloads before they reach the store.
// Payload structs keep every field as raw JSON so a missing key, a null and a
// mistyped value stay distinguishable; Validator turns their struct tags into
// Errors keyed by JSON field name.
package schema

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Messages reported per field.
const (
	MsgRequired     = "Missing data for required field."
	MsgNull         = "Field may not be null."
	MsgInvalidStr   = "Not a valid string."
	MsgInvalidInt   = "Not a valid integer."
	MsgInvalidDate  = "Not a valid date."
	MsgUnknown      = "Unknown field."
	MsgInvalidInput = "Invalid input type."
)

// SchemaKey holds errors that are not tied to a single field.
const SchemaKey = "_schema"

// Errors maps a field name to its validation messages.
type Errors map[string][]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Merge returns the union of a and b. Either may be nil.
func Merge(a, b Errors) Errors {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := Errors{}
	for _, src := range []Errors{a, b} {
		for k, msgs := range src {
			out[k] = append(out[k], msgs...)
		}
	}
	return out
}

// Bind decodes body into the payload struct dst. Anything that is not a JSON
// object (array, scalar, malformed or empty body) is reported under
// SchemaKey; keys dst has no field for are reported as unknown.
func Bind(body []byte, dst any) Errors {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Errors{SchemaKey: {MsgInvalidInput}}
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return Errors{SchemaKey: {MsgInvalidInput}}
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return Errors{SchemaKey: {MsgInvalidInput}}
	}

	known := jsonFields(reflect.TypeOf(dst))
	errs := Errors{}
	for k := range obj {
		if !known[k] {
			errs.add(k, MsgUnknown)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// jsonFields returns the JSON names of the struct (or pointer to struct) t.
func jsonFields(t reflect.Type) map[string]bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]bool{}
	for i := 0; i < t.NumField(); i++ {
		if name := jsonName(t.Field(i)); name != "" {
			out[name] = true
		}
	}
	return out
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func parseString(v json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// parseInt accepts JSON integers, integral floats and numeric strings.
// Booleans, fractions and anything else are rejected.
func parseInt(v json.RawMessage) (int, bool) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return 0, false
	}
	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return n, true
	case 't', 'f', 'n', '[', '{':
		return 0, false
	}

	var num json.Number
	if err := json.Unmarshal(v, &num); err != nil {
		return 0, false
	}
	if n, err := num.Int64(); err == nil {
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
