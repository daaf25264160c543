package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Absent", KindAbsent.String())
	assert.Equal(t, "Record", KindRecord.String())
	assert.Equal(t, "Opaque", KindOpaque.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestValue_ZeroIsAbsent(t *testing.T) {
	var v Value

	assert.True(t, v.IsAbsent())
	assert.True(t, v.IsNil())
	assert.False(t, v.IsNull())
	assert.Nil(t, v.Interface())
}

func TestOf(t *testing.T) {
	type named string

	tests := []struct {
		name string
		in   any
		kind Kind
		want any
	}{
		{"nil", nil, KindNull, nil},
		{"bool", true, KindBool, true},
		{"string", "me", KindString, "me"},
		{"int", 7, KindInt, int64(7)},
		{"int32", int32(7), KindInt, int64(7)},
		{"uint8", uint8(3), KindInt, int64(3)},
		{"uint64 in range", uint64(math.MaxInt64), KindInt, int64(math.MaxInt64)},
		{"uint64 overflow", uint64(math.MaxUint64), KindOpaque, uint64(math.MaxUint64)},
		{"float32", float32(1.5), KindFloat, 1.5},
		{"named string", named("x"), KindString, "x"},
		{"strings", []string{"a", "b"}, KindList, []any{"a", "b"}},
		{"ints", []int{1, 2}, KindList, []any{int64(1), int64(2)}},
		{"nil slice", []int(nil), KindNull, nil},
		{"map", map[string]any{"b": 1, "a": "x"}, KindRecord, map[string]any{"a": "x", "b": int64(1)}},
		{"typed map", map[string]int{"a": 1}, KindRecord, map[string]any{"a": int64(1)}},
		{"non-string keys", map[int]int{1: 1}, KindOpaque, map[int]int{1: 1}},
		{"struct", struct{ A int }{1}, KindOpaque, struct{ A int }{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Of(tt.in)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.want, v.Interface())
		})
	}
}

func TestOf_MapKeysSorted(t *testing.T) {
	v := Of(map[string]any{"zeta": 1, "alpha": 2, "mid": 3})

	r, ok := v.AsRecord()
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Keys())
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Int(1).Equal(Float(1)))
	assert.True(t, Strings("a", "b").Equal(List(String("a"), String("b"))))
	assert.False(t, Strings("a").Equal(Strings("a", "b")))
	assert.False(t, Null().Equal(Absent()))
	assert.True(t, Null().Equal(Null()))
	assert.False(t, String("1").Equal(Int(1)))

	r1 := NewRecord().With("a", Int(1))
	r2 := NewRecord().With("a", Int(1))
	assert.True(t, Object(r1).Equal(Object(r2)))

	r2.Set("b", Null())
	assert.False(t, Object(r1).Equal(Object(r2)))
}

func TestValue_Contains(t *testing.T) {
	list := Strings("myself", "I", "Snow")

	assert.True(t, list.Contains(String("Snow")))
	assert.False(t, list.Contains(String("snow")))
	assert.False(t, String("Snow").Contains(String("Snow")))
}

func TestValue_Accessors(t *testing.T) {
	s, ok := String("me").AsString()
	assert.True(t, ok)
	assert.Equal(t, "me", s)

	_, ok = Int(1).AsString()
	assert.False(t, ok)

	f, ok := Int(2).AsFloat()
	assert.True(t, ok)
	assert.InDelta(t, 2.0, f, 0)

	_, ok = Float(2).AsInt()
	assert.False(t, ok)

	assert.True(t, Object(nil).IsNull())
}
