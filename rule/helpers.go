package rule

import (
	"errors"

	"object-mapper/value"
)

// ErrNotRecord is returned by record-level helpers handed a non-record value.
var ErrNotRecord = errors.New("value is not a record")

// Const returns a Func ignoring its input and returning v.
func Const(v value.Value) Func {
	return func(value.Value) (value.Value, error) {
		return v, nil
	}
}

// SetField returns a keyless Func producing a copy of the record with key
// set to v.
func SetField(key string, v value.Value) Func {
	return func(in value.Value) (value.Value, error) {
		rec, ok := in.AsRecord()
		if !ok {
			return value.Value{}, ErrNotRecord
		}

		out := rec.Clone()
		out.Set(key, v)

		return value.Object(out), nil
	}
}

// When adapts an infallible check into a Predicate.
func When(fn func(*value.Record) bool) Predicate {
	return func(r *value.Record) (bool, error) {
		return fn(r), nil
	}
}

// FieldContains matches when the list under key holds elem.
func FieldContains(key string, elem value.Value) Predicate {
	return When(func(r *value.Record) bool {
		return r.Get(key).Contains(elem)
	})
}

// FieldEquals matches when the value under key equals v.
func FieldEquals(key string, v value.Value) Predicate {
	return When(func(r *value.Record) bool {
		return r.Get(key).Equal(v)
	})
}

// FieldBetween matches when the number under key lies in [lo, hi].
// Non-numeric values never match.
func FieldBetween(key string, lo, hi float64) Predicate {
	return When(func(r *value.Record) bool {
		f, ok := r.Get(key).AsFloat()
		return ok && lo <= f && f <= hi
	})
}

// Not inverts p. Errors pass through.
func Not(p Predicate) Predicate {
	return func(r *value.Record) (bool, error) {
		ok, err := p(r)
		return !ok && err == nil, err
	}
}

// All matches when every predicate matches, stopping at the first miss
// or error. No predicates always matches.
func All(ps ...Predicate) Predicate {
	return func(r *value.Record) (bool, error) {
		for _, p := range ps {
			ok, err := p(r)
			if err != nil || !ok {
				return false, err
			}
		}

		return true, nil
	}
}

// Any matches when at least one predicate matches, stopping at the first
// hit or error.
func Any(ps ...Predicate) Predicate {
	return func(r *value.Record) (bool, error) {
		for _, p := range ps {
			ok, err := p(r)
			if err != nil || ok {
				return ok && err == nil, err
			}
		}

		return false, nil
	}
}

// Chain composes fns left to right. The first error stops the chain.
func Chain(fns ...Func) Func {
	return func(in value.Value) (value.Value, error) {
		out := in

		for _, fn := range fns {
			var err error

			out, err = fn(out)
			if err != nil {
				return value.Value{}, err
			}
		}

		return out, nil
	}
}
