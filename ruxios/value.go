package ruxios

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

var nullJSON = []byte("null")

// Value is a self-describing JSON document. Use it as the request, response
// or error type when there is no fixed schema.
//
// The zero Value is JSON null.
//
// Example:
//
//	resp, err := ruxios.Get[ruxios.Value, ruxios.Value](ctx, client, "/users/octocat")
//	login := resp.Data.Get("login").String()
type Value struct {
	raw []byte
}

// Null is the JSON null document.
var Null = Value{}

// RawValue wraps already-encoded JSON. The bytes are copied.
// It does not validate b; invalid JSON fails later, on Decode or when the
// value is encoded.
func RawValue(b []byte) Value {
	if len(b) == 0 {
		return Value{}
	}
	return Value{raw: append([]byte(nil), b...)}
}

// ValueOf converts any JSON-encodable value into a Value.
func ValueOf(v any) (Value, error) {
	switch val := v.(type) {
	case Value:
		return val, nil
	case *Value:
		if val == nil {
			return Value{}, nil
		}
		return *val, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return Value{}, err
	}
	return Value{raw: raw}, nil
}

// MustValueOf is like ValueOf but panics on error. Intended for literals in
// tests and examples.
func MustValueOf(v any) Value {
	val, err := ValueOf(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Raw returns the encoded document. The result must not be modified.
func (v Value) Raw() []byte {
	if len(v.raw) == 0 {
		return nullJSON
	}
	return v.raw
}

// String returns the encoded document as text.
func (v Value) String() string {
	return string(v.Raw())
}

// IsNull reports whether the document is JSON null.
func (v Value) IsNull() bool {
	return bytes.Equal(bytes.TrimSpace(v.Raw()), nullJSON)
}

// Get queries the document with a gjson path, e.g. "user.emails.0".
//
// See https://github.com/tidwall/gjson#path-syntax for the syntax.
func (v Value) Get(path string) gjson.Result {
	return gjson.GetBytes(v.Raw(), path)
}

// Decode re-decodes the document into target, which must be a pointer.
func (v Value) Decode(target any) error {
	return json.Unmarshal(v.Raw(), target)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.Raw(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(b []byte) error {
	v.raw = append([]byte(nil), b...)
	return nil
}
