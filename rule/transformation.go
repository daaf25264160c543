package rule

import "object-mapper/value"

// Func transforms a value. Keyed conditions receive and return a single
// field value; keyless conditions receive and return a whole record value.
type Func func(value.Value) (value.Value, error)

// Transformation bundles the functions a Condition may run.
type Transformation struct {
	// Transform applies in both directions and wins over the others.
	Transform Func
	// Source applies only in direction ToSource.
	Source Func
	// Destination applies only in direction ToDestination.
	Destination Func
}

// Transform returns a direction-agnostic transformation.
func Transform(fn Func) Transformation {
	return Transformation{Transform: fn}
}

// Bidirectional returns a transformation with one function per direction.
// Either may be nil.
func Bidirectional(source, destination Func) Transformation {
	return Transformation{Source: source, Destination: destination}
}

type picker func(t Transformation, d Direction) Func

// precedence is evaluated top to bottom; the first non-nil function wins.
var precedence = []picker{
	func(t Transformation, _ Direction) Func { return t.Transform },
	func(t Transformation, d Direction) Func {
		if d == ToSource {
			return t.Source
		}

		return nil
	},
	func(t Transformation, d Direction) Func {
		if d == ToDestination {
			return t.Destination
		}

		return nil
	},
}

// Pick returns the function that applies in direction d, or nil when none
// does and the value should pass through unchanged.
func (t Transformation) Pick(d Direction) Func {
	for _, p := range precedence {
		if fn := p(t, d); fn != nil {
			return fn
		}
	}

	return nil
}

// IsIdentity reports whether t holds no function at all.
func (t Transformation) IsIdentity() bool {
	return t.Transform == nil && t.Source == nil && t.Destination == nil
}
