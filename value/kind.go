package value

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindAbsent Kind = iota // zero value: no value at all
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindRecord
	KindOpaque // any other Go value, carried as is
)

// IsNumber reports whether the kind holds a numeric value.
func (k Kind) IsNumber() bool {
	return k == KindInt || k == KindFloat
}

// IsNil reports whether the kind carries no data.
func (k Kind) IsNil() bool {
	return k == KindAbsent || k == KindNull
}
