package fff

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Object is a decoded JSON object as handed over by the dispatcher.
//
// Values are whatever encoding/json produces with UseNumber enabled:
// nil, bool, json.Number, string, []any or map[string]any. The accessors
// below never fail; a missing key, a null and a value of the wrong kind all
// yield the caller's default.
type Object map[string]any

// AsObject converts a decoded JSON value into an Object.
func AsObject(v any) (Object, bool) {
	switch t := v.(type) {
	case Object:
		return t, true
	case map[string]any:
		return Object(t), true
	default:
		return nil, false
	}
}

// String returns the string at key, or def.
func (o Object) String(key, def string) string {
	if s, ok := o[key].(string); ok {
		return s
	}
	return def
}

// OptString returns the string at key, or nil. Numbers are rendered as text.
func (o Object) OptString(key string) *string {
	switch t := o[key].(type) {
	case string:
		return &t
	case json.Number:
		s := t.String()
		return &s
	default:
		return nil
	}
}

// Int returns the integer at key, or def.
func (o Object) Int(key string, def int64) int64 {
	if n := o.OptInt(key); n != nil {
		return *n
	}
	return def
}

// OptInt returns the integer at key, or nil. Numeric strings are accepted.
func (o Object) OptInt(key string) *int64 {
	var text string
	switch t := o[key].(type) {
	case json.Number:
		text = t.String()
	case string:
		text = strings.TrimSpace(t)
	case float64:
		return integral(t)
	default:
		return nil
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return &n
	}
	// 3.0 style integers
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return integral(f)
	}
	return nil
}

// integral converts f when it is a whole number that fits in an int64.
func integral(f float64) *int64 {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil
	}
	n := int64(f)
	return &n
}

// OptFloat returns the number at key, or nil.
func (o Object) OptFloat(key string) *float64 {
	var text string
	switch t := o[key].(type) {
	case json.Number:
		text = t.String()
	case string:
		text = strings.TrimSpace(t)
	case float64:
		return &t
	default:
		return nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Bool returns the boolean at key, or def.
func (o Object) Bool(key string, def bool) bool {
	if b, ok := o[key].(bool); ok {
		return b
	}
	return def
}

// Object returns the nested object at key. The second result is false when
// the key is missing, null, not an object, or an empty object.
func (o Object) Object(key string) (Object, bool) {
	obj, ok := AsObject(o[key])
	if !ok || len(obj) == 0 {
		return nil, false
	}
	return obj, true
}

// ObjectOrEmpty returns the nested object at key, or a fresh empty Object.
func (o Object) ObjectOrEmpty(key string) Object {
	if obj, ok := AsObject(o[key]); ok {
		return obj
	}
	return Object{}
}

// Objects returns the object items of the list at key. Items that are not
// objects are skipped. The result is never nil.
func (o Object) Objects(key string) []Object {
	items, _ := o[key].([]any)
	out := make([]Object, 0, len(items))
	for _, item := range items {
		if obj, ok := AsObject(item); ok {
			out = append(out, obj)
		}
	}
	return out
}

// List returns the list at key unchanged, or a fresh empty slice.
func (o Object) List(key string) []any {
	if items, ok := o[key].([]any); ok {
		return items
	}
	return []any{}
}

// Strings returns the scalar items of the list at key as text.
func (o Object) Strings(key string) []string {
	items, _ := o[key].([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch t := item.(type) {
		case string:
			out = append(out, t)
		case json.Number:
			out = append(out, t.String())
		}
	}
	return out
}
