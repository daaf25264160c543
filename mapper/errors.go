package mapper

import "errors"

var (
	ErrNilShape      = errors.New("mapper requires both a source and a destination shape")
	ErrMissingInput  = errors.New("missing input: data is nil")
	ErrKeylessResult = errors.New("keyless transformation must return a record")
)
