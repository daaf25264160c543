package value

import (
	"math"
	"reflect"
	"sort"
)

// Value is a tagged variant holding one piece of mapped data.
// The zero Value is absent.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	rec  *Record
	raw  any
}

// Absent returns a value representing a missing field.
func Absent() Value { return Value{} }

// Null returns an explicit null value.
func Null() Value { return Value{kind: KindNull} }

func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }
func Int(i int64) Value     { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func String(s string) Value { return Value{kind: KindString, s: s} }

// Opaque wraps a Go value the model does not interpret.
func Opaque(raw any) Value { return Value{kind: KindOpaque, raw: raw} }

// List returns a list value holding vs.
func List(vs ...Value) Value { return Value{kind: KindList, list: vs} }

// Object returns a record value. A nil record becomes Null.
func Object(r *Record) Value {
	if r == nil {
		return Null()
	}

	return Value{kind: KindRecord, rec: r}
}

// Strings returns a list value of string values.
func Strings(ss ...string) Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = String(s)
	}

	return List(vs...)
}

// Of converts plain Go data into a Value.
//
// Supported inputs:
//   - nil -> Null
//   - Value, *Record
//   - bool, string, all integer and float kinds
//   - slices and arrays -> List, element by element
//   - maps with string keys -> Record, keys sorted
//
// Anything else (structs, pointers, funcs, ...) is wrapped with Opaque.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case *Record:
		return Object(x)
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int64:
		return Int(x)
	case float64:
		return Float(x)
	case []string:
		return Strings(x...)
	case []any:
		vs := make([]Value, len(x))
		for i := range x {
			vs[i] = Of(x[i])
		}

		return List(vs...)
	case map[string]any:
		return Object(RecordFromMap(x))
	}

	return ofReflect(reflect.ValueOf(v))
}

func ofReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	default:
		return Opaque(rv.Interface())

	case reflect.Bool:
		return Bool(rv.Bool())

	case reflect.String:
		return String(rv.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			// does not fit; keep the original unsigned value
			return Opaque(rv.Interface())
		}

		return Int(int64(u))

	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null()
		}

		vs := make([]Value, rv.Len())
		for i := range vs {
			vs[i] = Of(rv.Index(i).Interface())
		}

		return List(vs...)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Opaque(rv.Interface())
		}

		if rv.IsNil() {
			return Null()
		}

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}

		sort.Strings(keys)

		r := NewRecord()
		for _, k := range keys {
			r.Set(k, Of(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface()))
		}

		return Object(r)
	}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }
func (v Value) IsNull() bool   { return v.kind == KindNull }

// IsNil reports whether v is absent or null.
func (v Value) IsNil() bool { return v.kind.IsNil() }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsInt returns the integer held by v. Floats are not converted.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns v as a float64, converting integers.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsList returns the elements of a list value. The slice is shared with v.
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

// AsRecord returns the record held by v. The record is shared with v.
func (v Value) AsRecord() (*Record, bool) { return v.rec, v.kind == KindRecord }

// Interface converts v back into plain Go data: nil, bool, int64, float64,
// string, []any, map[string]any, or the opaque value.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i := range v.list {
			out[i] = v.list[i].Interface()
		}

		return out
	case KindRecord:
		return v.rec.Interface()
	case KindOpaque:
		return v.raw
	default:
		return nil
	}
}

// Equal reports whether v and other hold the same data. Integers and
// floats compare numerically; opaque values compare with reflect.DeepEqual.
func (v Value) Equal(other Value) bool {
	if v.kind.IsNumber() && other.kind.IsNumber() {
		if v.kind == KindInt && other.kind == KindInt {
			return v.i == other.i
		}

		a, _ := v.AsFloat()
		b, _ := other.AsFloat()

		return a == b
	}

	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}

		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}

		return true
	case KindRecord:
		return v.rec.Equal(other.rec)
	case KindOpaque:
		return reflect.DeepEqual(v.raw, other.raw)
	default:
		return true
	}
}

// Contains reports whether v is a list holding an element equal to elem.
func (v Value) Contains(elem Value) bool {
	for _, e := range v.list {
		if e.Equal(elem) {
			return true
		}
	}

	return false
}
