// Package models defines client-side data models used by the payroll CLI:
// server-shaped records whose field set is discovered at runtime, uploads,
// and the cached user profile.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotObject is returned when a Record is decoded from anything but a JSON
// object.
var ErrNotObject = errors.New("record must be a JSON object")

// Value is one field value kept in its compact JSON form. A nil Value means
// the field is absent.
type Value json.RawMessage

// IsNull reports whether the value is absent or JSON null.
func (v Value) IsNull() bool {
	return len(v) == 0 || string(v) == "null"
}

// String renders the value the way it is shown in tables and exports:
// strings unquoted, numbers and booleans as their literal text, objects and
// arrays as compact JSON, null as the empty string.
func (v Value) String() string {
	if v.IsNull() {
		return ""
	}
	if v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
	}
	return string(v)
}

// Truthy applies JavaScript truthiness to the JSON value: null, false, 0
// and "" are falsy, everything else (including empty objects and arrays)
// is truthy.
func (v Value) Truthy() bool {
	if v.IsNull() {
		return false
	}
	switch v[0] {
	case 't':
		return true
	case 'f':
		return false
	case '"':
		return v.String() != ""
	case '{', '[':
		return true
	default:
		f, err := strconv.ParseFloat(string(v), 64)
		return err == nil && f != 0
	}
}

// IsArray reports whether the value is a JSON array.
func (v Value) IsArray() bool {
	return len(v) > 0 && v[0] == '['
}

// IsObject reports whether the value is a JSON object.
func (v Value) IsObject() bool {
	return len(v) > 0 && v[0] == '{'
}

// Record is an ordered mapping from field name to value. The order is the
// order in which keys appeared in the server response; the payroll API does
// not fix the schema, so nothing beyond "object of scalars" is assumed.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord builds a record from alternating key, value pairs. Values are
// marshalled to JSON; it panics on an odd number of arguments or
// unmarshallable values, so it is meant for fixtures and tests.
func NewRecord(kv ...any) Record {
	if len(kv)%2 != 0 {
		panic("models.NewRecord: odd number of arguments")
	}
	var r Record
	for i := 0; i < len(kv); i += 2 {
		b, err := json.Marshal(kv[i+1])
		if err != nil {
			panic(fmt.Sprintf("models.NewRecord: %v", err))
		}
		r.Set(kv[i].(string), Value(b))
	}
	return r
}

// Keys returns field names in response order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Values returns field values in key order.
func (r Record) Values() []Value {
	out := make([]Value, len(r.keys))
	for i, k := range r.keys {
		out[i] = r.values[k]
	}
	return out
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Get returns the value for key and whether the key is present.
func (r Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Text returns the display text of key, or "" when absent.
func (r Record) Text(key string) string {
	v, _ := r.Get(key)
	return v.String()
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (r *Record) Set(key string, value Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// UnmarshalJSON decodes a JSON object preserving key order. Duplicate keys
// keep their first position and their last value.
func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ErrNotObject
	}

	*r = Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		r.Set(key, Value(buf.Bytes()))
	}
	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the record as a JSON object in key order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		v := r.values[k]
		if len(v) == 0 {
			buf.WriteString("null")
		} else {
			buf.Write(v)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String is a compact "key=value" rendering used in logs.
func (r Record) String() string {
	parts := make([]string, len(r.keys))
	for i, k := range r.keys {
		parts[i] = k + "=" + r.values[k].String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
