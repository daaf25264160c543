package shape

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/go-viper/mapstructure/v2"

	"object-mapper/value"
)

var ErrNilInput = errors.New("cannot encode nil input")

// Encode converts a struct, or a pointer to one, into a record keyed the
// same way For names the struct's fields.
//
// Nested structs become nested records, slices and arrays become lists,
// string-keyed maps become records with sorted keys, and nil pointers,
// slices, maps and interfaces become null. Structs without mappable fields
// (time.Time and the like) are carried as opaque values.
func Encode(v any) (*value.Record, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, ErrNilInput
		}

		rv = rv.Elem()
	}

	if !rv.IsValid() {
		return nil, ErrNilInput
	}

	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, rv.Type())
	}

	return encodeStruct(rv), nil
}

func encodeStruct(rv reflect.Value) *value.Record {
	r := value.NewRecord()
	for _, f := range structFields(rv.Type()) {
		r.Set(f.key, encodeValue(rv.Field(f.index)))
	}

	return r
}

func encodeValue(fv reflect.Value) value.Value {
	switch fv.Kind() {
	default:
		return value.Of(fv.Interface())

	case reflect.Invalid:
		return value.Null()

	case reflect.Ptr, reflect.Interface:
		if fv.IsNil() {
			return value.Null()
		}

		return encodeValue(fv.Elem())

	case reflect.Struct:
		if len(structFields(fv.Type())) == 0 {
			return value.Opaque(fv.Interface())
		}

		return value.Object(encodeStruct(fv))

	case reflect.Slice, reflect.Array:
		if fv.Kind() == reflect.Slice && fv.IsNil() {
			return value.Null()
		}

		vs := make([]value.Value, fv.Len())
		for i := range vs {
			vs[i] = encodeValue(fv.Index(i))
		}

		return value.List(vs...)

	case reflect.Map:
		if fv.Type().Key().Kind() != reflect.String {
			return value.Opaque(fv.Interface())
		}

		if fv.IsNil() {
			return value.Null()
		}

		keys := fv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

		r := value.NewRecord()
		for _, k := range keys {
			r.Set(k.String(), encodeValue(fv.MapIndex(k)))
		}

		return value.Object(r)
	}
}

// Decode fills the struct pointed to by out from rec. Absent fields are
// skipped and null fields leave the zero value.
func Decode(rec *value.Record, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: TagName,
		Result:  out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := dec.Decode(rec.Interface()); err != nil {
		return fmt.Errorf("failed to decode record into %T: %w", out, err)
	}

	return nil
}
