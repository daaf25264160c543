package shape

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"object-mapper/value"
)

// TagName is the struct tag consulted for field names.
const TagName = "map"

var ErrNotStruct = errors.New("shape type is not a struct")

// Shape describes an object type by name and declared fields.
type Shape interface {
	Name() string
	// Fields returns the declared field names in order. An empty result
	// means the shape is unshaped.
	Fields() []string
}

type declared struct {
	name   string
	fields []string
}

func (d *declared) Name() string { return d.name }

func (d *declared) Fields() []string {
	out := make([]string, len(d.fields))
	copy(out, d.fields)

	return out
}

func (d *declared) String() string { return d.name }

// Declared returns a shape with an explicit field list.
func Declared(name string, fields ...string) Shape {
	f := make([]string, len(fields))
	copy(f, fields)

	return &declared{name: name, fields: f}
}

// Plain returns an unshaped shape: it declares no fields.
func Plain() Shape {
	return &declared{name: "plain"}
}

// HasFields reports whether s declares at least one field.
func HasFields(s Shape) bool {
	return len(s.Fields()) > 0
}

// Instance returns a fresh empty object of shape s: every declared field is
// present and absent.
func Instance(s Shape) *value.Record {
	r := value.NewRecord()
	for _, f := range s.Fields() {
		r.Set(f, value.Absent())
	}

	return r
}

// Of returns the shape of struct type T (or the struct T points to).
func Of[T any]() (Shape, error) {
	return For(reflect.TypeOf((*T)(nil)).Elem())
}

// For returns the shape of struct type t (or the struct t points to).
func For(t reflect.Type) (Shape, error) {
	t = base(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, t)
	}

	var fields []string
	for _, f := range structFields(t) {
		fields = append(fields, f.key)
	}

	return &declared{name: typeName(t), fields: fields}, nil
}

type structField struct {
	key   string
	index int
}

// structFields lists the mappable fields of struct type t in declaration order.
func structFields(t reflect.Type) []structField {
	var out []structField

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		key, ok := fieldKey(f)
		if !ok {
			continue
		}

		out = append(out, structField{key: key, index: i})
	}

	return out
}

// fieldKey tries: `map:"name"` tag, then the Go field name.
func fieldKey(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get(TagName)
	if tag == "-" {
		return "", false
	}

	// trim options
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}

	if tag != "" {
		return tag, true
	}

	return f.Name, true
}

func base(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

func typeName(t reflect.Type) string {
	if t.Name() == "" {
		return t.String()
	}

	if t.PkgPath() == "" {
		return t.Name()
	}

	return t.PkgPath() + "." + t.Name()
}
