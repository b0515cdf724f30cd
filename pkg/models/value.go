package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Kind identifies which member of the JSON union a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
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
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an arbitrary JSON document: null, bool, number, string, array or object.
// Numbers keep their literal text so large integers survive decoding.
// The zero Value is JSON null.
type Value struct {
	kind   Kind
	b      bool
	num    json.Number
	str    string
	array  []Value
	object map[string]Value
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a numeric literal.
func Number(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// Int wraps an integer.
func Int(n int64) Value { return Number(json.Number(strconv.FormatInt(n, 10))) }

// Float wraps a float.
func Float(f float64) Value { return Number(json.Number(strconv.FormatFloat(f, 'g', -1, 64))) }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps a list of values.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, array: items}
}

// Object wraps a set of members.
func Object(members map[string]Value) Value {
	if members == nil {
		members = map[string]Value{}
	}
	return Value{kind: KindObject, object: members}
}

// ParseValue decodes a single JSON document. Empty input yields null.
func ParseValue(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Null(), nil
	}

	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		return Null(), err
	}
	return v, nil
}

// ValueOf converts the output of a UseNumber json.Decoder (or an equivalent Go tree) into a Value.
func ValueOf(raw interface{}) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return typed, nil
	case bool:
		return Bool(typed), nil
	case json.Number:
		return Number(typed), nil
	case string:
		return String(typed), nil
	case float64:
		return Float(typed), nil
	case int:
		return Int(int64(typed)), nil
	case int64:
		return Int(typed), nil
	case []interface{}:
		items := make([]Value, 0, len(typed))
		for _, item := range typed {
			v, err := ValueOf(item)
			if err != nil {
				return Null(), err
			}
			items = append(items, v)
		}
		return Array(items...), nil
	case map[string]interface{}:
		members := make(map[string]Value, len(typed))
		for key, item := range typed {
			v, err := ValueOf(item)
			if err != nil {
				return Null(), err
			}
			members[key] = v
		}
		return Object(members), nil
	default:
		return Null(), fmt.Errorf("unsupported JSON value of type %T", raw)
	}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and whether v holds one.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsString returns the string and whether v holds one.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsNumber returns the numeric literal and whether v holds one.
func (v Value) AsNumber() (json.Number, bool) { return v.num, v.kind == KindNumber }

// AsInt64 returns the number as an integer; false if v is not an integral number.
func (v Value) AsInt64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := v.num.Int64()
	return n, err == nil
}

// AsFloat64 returns the number as a float; false if v is not a number.
func (v Value) AsFloat64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := v.num.Float64()
	return f, err == nil
}

// AsArray returns the elements and whether v holds an array.
func (v Value) AsArray() ([]Value, bool) { return v.array, v.kind == KindArray }

// AsObject returns the members and whether v holds an object.
func (v Value) AsObject() (map[string]Value, bool) { return v.object, v.kind == KindObject }

// Get returns the member named key. Missing keys and non-objects yield null, false.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Null(), false
	}
	member, ok := v.object[key]
	return member, ok
}

// Index returns the i-th array element. Out of range and non-arrays yield null, false.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.array) {
		return Null(), false
	}
	return v.array[i], true
}

// Len is the element count of an array, member count of an object, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.array)
	case KindObject:
		return len(v.object)
	default:
		return 0
	}
}

// Keys returns the object member names in sorted order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.object))
	for key := range v.object {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Interface converts v back to plain Go values (map[string]interface{}, []interface{}, json.Number, ...).
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		items := make([]interface{}, len(v.array))
		for i, item := range v.array {
			items[i] = item.Interface()
		}
		return items
	case KindObject:
		members := make(map[string]interface{}, len(v.object))
		for key, item := range v.object {
			members[key] = item.Interface()
		}
		return members
	default:
		return nil
	}
}

// Equal reports deep equality. Numbers compare by numeric value, so 1 equals 1.0.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.str == other.str
	case KindNumber:
		if v.num == other.num {
			return true
		}
		left, errLeft := v.num.Float64()
		right, errRight := other.num.Float64()
		return errLeft == nil && errRight == nil && left == right
	case KindArray:
		if len(v.array) != len(other.array) {
			return false
		}
		for i := range v.array {
			if !v.array[i].Equal(other.array[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.object) != len(other.object) {
			return false
		}
		for key, member := range v.object {
			otherMember, ok := other.object[key]
			if !ok || !member.Equal(otherMember) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Decode re-encodes v and unmarshals it into target, e.g. a typed struct.
func (v Value) Decode(target interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func (v Value) String() string {
	data, err := json.Marshal(v)
	if err != nil {
		return "<invalid json: " + err.Error() + ">"
	}
	return string(data)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindNumber:
		if v.num == "" {
			return []byte("0"), nil
		}
		return json.Marshal(v.num)
	case KindArray:
		if v.array == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.array)
	case KindObject:
		if v.object == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.object)
	default:
		return json.Marshal(v.Interface())
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	if _, err := decoder.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON value")
	}

	parsed, err := ValueOf(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
