package mapper

import (
	"fmt"

	"object-mapper/rule"
	"object-mapper/shape"
)

// Typed maps between Go struct types S (source) and D (destination).
type Typed[S, D any] struct {
	m *Mapper
}

// NewTyped builds a Typed mapper whose shapes are derived from S and D.
func NewTyped[S, D any](conditions []rule.Condition, opts ...Option) (*Typed[S, D], error) {
	src, err := shape.Of[S]()
	if err != nil {
		return nil, fmt.Errorf("source shape: %w", err)
	}

	dst, err := shape.Of[D]()
	if err != nil {
		return nil, fmt.Errorf("destination shape: %w", err)
	}

	m, err := New(src, dst, conditions, opts...)
	if err != nil {
		return nil, err
	}

	return &Typed[S, D]{m: m}, nil
}

// Mapper returns the underlying record mapper.
func (t *Typed[S, D]) Mapper() *Mapper { return t.m }

// MapToSource converts s into a new D.
func (t *Typed[S, D]) MapToSource(s S, excludedKeys ...string) (D, error) {
	var out D

	rec, err := shape.Encode(s)
	if err != nil {
		return out, err
	}

	res, err := t.m.MapToSource(rec, excludedKeys...)
	if err != nil {
		return out, err
	}

	err = shape.Decode(res, &out)

	return out, err
}

// MapToDestination converts d into a new S.
func (t *Typed[S, D]) MapToDestination(d D, excludedKeys ...string) (S, error) {
	var out S

	rec, err := shape.Encode(d)
	if err != nil {
		return out, err
	}

	res, err := t.m.MapToDestination(rec, excludedKeys...)
	if err != nil {
		return out, err
	}

	err = shape.Decode(res, &out)

	return out, err
}
