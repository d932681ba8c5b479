// Package format turns MIXR data into display strings.
//
// Arbitrary data is rendered through [Value], a small tagged union of
// JSON-shaped values. Data JSON has no form for is handled the way a
// JavaScript client serializes it: non-finite numbers become null and
// functions are left out. A cyclic input is carried as an unrepresentable
// Value, and [FormatData] substitutes [Unserializable] for the whole
// result instead of failing.
package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
)

// Unserializable is returned by FormatData when the input cannot be encoded.
const Unserializable = "[unserializable]"

// Kind tags the variant held by a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindUnrepresentable
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindUnrepresentable:
		return "unrepresentable"
	default:
		return "unknown"
	}
}

// Field is a single key/value entry of an object Value.
type Field struct {
	Key   string
	Value Value
}

// Value is an immutable JSON-shaped value. The zero Value is undefined.
// Constructors copy their inputs, so a Value tree can never be cyclic.
type Value struct {
	kind   Kind
	b      bool
	num    string // JSON number literal
	str    string
	items  []Value
	fields []Field
	err    error
}

// Undefined returns the absent value.
func Undefined() Value { return Value{} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps a float. NaN and infinities have no JSON form and become null.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	// encoding/json formats floats the way JavaScript does.
	b, err := json.Marshal(f)
	if err != nil {
		return Unrepresentable(err)
	}
	return Value{kind: KindNumber, num: string(b)}
}

// Int wraps an integer.
func Int(n int64) Value {
	return Value{kind: KindNumber, num: strconv.FormatInt(n, 10)}
}

// Array builds an array value from items.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: append([]Value(nil), items...)}
}

// Object builds an object value. Field order is preserved.
func Object(fields ...Field) Value {
	return Value{kind: KindObject, fields: append([]Field(nil), fields...)}
}

// Unrepresentable marks a value that cannot be encoded, with the reason.
func Unrepresentable(reason error) Value {
	if reason == nil {
		reason = errors.New("unrepresentable value")
	}
	return Value{kind: KindUnrepresentable, err: reason}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Len returns the number of items or fields for arrays and objects.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Err returns why v is unrepresentable, or nil.
func (v Value) Err() error { return v.err }

// MarshalJSON encodes v. Undefined object fields are skipped and undefined
// array items encode as null, matching how JavaScript clients serialize.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindUndefined, KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		buf.WriteString(v.num)
	case KindString:
		if err := encodeString(buf, v.str); err != nil {
			return err
		}
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		first := true
		for _, f := range v.fields {
			if f.Value.kind == KindUndefined {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := encodeString(buf, f.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := f.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindUnrepresentable:
		return v.err
	default:
		return fmt.Errorf("unknown value kind %d", v.kind)
	}
	return nil
}

// encodeString writes s as a JSON string without HTML escaping.
func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// ValueOf converts an arbitrary Go value. Structs, maps and slices follow
// encoding/json's rules (JSON tags, sorted map keys, types with their own
// MarshalJSON). NaN and infinities become null. Functions and channels are
// omitted from objects, become null inside arrays, and are undefined on
// their own. A reference cycle yields an unrepresentable Value.
func ValueOf(x any) Value {
	if v, ok := x.(Value); ok {
		return v
	}
	var w walker
	return w.value(reflect.ValueOf(x))
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Value{kind: KindNumber, num: t.String()}, nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			var items []Value
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindArray, items: items}, nil
		case '{':
			var fields []Field
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				fields = append(fields, Field{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindObject, fields: fields}, nil
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// FormatData renders v as indented JSON (two spaces per level). ok is
// false only for an undefined v, which has no textual form. If any part
// of v is unrepresentable the result is Unserializable.
func FormatData(v Value) (s string, ok bool) {
	if v.kind == KindUndefined {
		return "", false
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return Unserializable, true
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), true
}

// Format is FormatData(ValueOf(x)).
func Format(x any) (string, bool) {
	return FormatData(ValueOf(x))
}

// Write renders v to w followed by a newline. Undefined values write nothing.
func Write(w io.Writer, v Value) error {
	s, ok := FormatData(v)
	if !ok {
		return nil
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
