package mapfile_test

import (
	"strings"

	"object-mapper/mapfile"
	"object-mapper/rule"
	"object-mapper/value"
)

func upper(v value.Value) (value.Value, error) {
	s, _ := v.AsString()
	return value.String(strings.ToUpper(s)), nil
}

func lower(v value.Value) (value.Value, error) {
	s, _ := v.AsString()
	return value.String(strings.ToLower(s)), nil
}

func testRegistry() *mapfile.Registry {
	return mapfile.NewRegistry().
		MustRegister("john", rule.Const(value.String("John"))).
		MustRegister("jeff", rule.Const(value.Object(value.NewRecord().
			With("title", value.String("Jeff")).
			With("values", value.Strings("goldbloom"))))).
		MustRegister("setTitleJohn", rule.SetField("title", value.String("John"))).
		MustRegister("markUpdated", rule.SetField("optionalValue", value.String("updated"))).
		MustRegister("upper", upper).
		MustRegister("lower", lower)
}

func mockObject(values ...string) *value.Record {
	return value.NewRecord().
		With("title", value.String("me")).
		With("values", value.Strings(values...))
}

func mockClassObject(values ...string) *value.Record {
	return mockObject(values...).
		With("otherObject", value.Object(value.NewRecord().
			With("title", value.String("you")).
			With("values", value.Strings("yourself")))).
		With("optionalValue", value.String("available"))
}
