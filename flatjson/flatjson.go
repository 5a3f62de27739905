// Package flatjson implements the narrow JSON grammar the clinic front end
// speaks: single-level objects whose values are plain strings or numbers.
// It is intentionally not a general JSON parser — nested objects, arrays,
// escaped quotes and embedded commas are rejected or mangled on purpose, and
// callers must only exchange flat payloads through it.
package flatjson

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotObject is returned when the input is not a flat JSON object.
var ErrNotObject = errors.New("not an object")

// Decode parses a flat JSON object into a string-to-string map.
// The trimmed input must start with '{' and end with '}'. The interior is
// split on commas, each pair on the first colon, and one layer of
// surrounding double quotes is stripped from key and value. Values are never
// type-converted; numeric fields are parsed by the caller.
func Decode(body string) (map[string]string, error) {
	s := strings.TrimSpace(body)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil, ErrNotObject
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])

	fields := map[string]string{}
	if inner == "" {
		return fields, nil
	}
	for _, pair := range strings.Split(inner, ",") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			return nil, ErrNotObject
		}
		key := unquote(strings.TrimSpace(kv[0]))
		value := unquote(strings.TrimSpace(kv[1]))
		fields[key] = value
	}
	return fields, nil
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

type field struct {
	key   string
	value interface{}
}

// Object is a flat JSON object that encodes its fields in insertion order,
// so the wire shape is stable across requests.
type Object struct {
	fields []field
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{}
}

// Set appends a field. Keys are not deduplicated; callers set each key once.
func (o *Object) Set(key string, value interface{}) *Object {
	o.fields = append(o.fields, field{key: key, value: value})
	return o
}

// EncodeStrings renders a JSON array of quoted strings.
func EncodeStrings(items []string) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, item := range items {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`"`)
		sb.WriteString(item)
		sb.WriteString(`"`)
	}
	sb.WriteString("]")
	return sb.String()
}

// EncodeObject renders a single object with fields in insertion order.
func EncodeObject(o *Object) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, f := range o.fields {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`"`)
		sb.WriteString(f.key)
		sb.WriteString(`":`)
		sb.WriteString(encodeValue(f.value))
	}
	sb.WriteString("}")
	return sb.String()
}

// EncodeObjects renders a JSON array of objects.
func EncodeObjects(objects []*Object) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, o := range objects {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(EncodeObject(o))
	}
	sb.WriteString("]")
	return sb.String()
}

// encodeValue emits numbers unquoted, string slices as arrays, and
// everything else as a quoted string.
func encodeValue(v interface{}) string {
	switch val := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(val)
	case []string:
		return EncodeStrings(val)
	default:
		return `"` + fmt.Sprint(val) + `"`
	}
}
